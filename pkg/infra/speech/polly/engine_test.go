package polly

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	pollysdk "github.com/aws/aws-sdk-go-v2/service/polly"
	pollytypes "github.com/aws/aws-sdk-go-v2/service/polly/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePollyClient struct {
	out   *pollysdk.SynthesizeSpeechOutput
	err   error
	input *pollysdk.SynthesizeSpeechInput
}

func (f *fakePollyClient) SynthesizeSpeech(_ context.Context, params *pollysdk.SynthesizeSpeechInput, _ ...func(*pollysdk.Options)) (*pollysdk.SynthesizeSpeechOutput, error) {
	f.input = params
	return f.out, f.err
}

type fakeAPIError struct {
	code string
	msg  string
}

func (e fakeAPIError) Error() string                 { return e.code + ": " + e.msg }
func (e fakeAPIError) ErrorCode() string             { return e.code }
func (e fakeAPIError) ErrorMessage() string          { return e.msg }
func (e fakeAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultServer }

func TestEngine_Synthesize_WritesWAV(t *testing.T) {
	pcm := []byte{0x01, 0x00, 0xff, 0x7f, 0x00, 0x80}
	client := &fakePollyClient{
		out: &pollysdk.SynthesizeSpeechOutput{AudioStream: io.NopCloser(bytes.NewReader(pcm))},
	}
	engine := newEngineWithClient(Config{}, client)
	out := filepath.Join(t.TempDir(), "audio_abc.wav")

	require.NoError(t, engine.Synthesize(context.Background(), "Gravity pulls.", out))

	require.NotNil(t, client.input)
	assert.Equal(t, pollytypes.OutputFormatPcm, client.input.OutputFormat)
	assert.Equal(t, pollytypes.EngineNeural, client.input.Engine)
	assert.Equal(t, pollytypes.VoiceId("Matthew"), client.input.VoiceId)
	assert.Equal(t, "16000", *client.input.SampleRate)
	assert.Equal(t, "Gravity pulls.", *client.input.Text)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Len(t, data, wavHeaderSize+len(pcm))
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[22:24]))
	assert.Equal(t, uint32(16000), binary.LittleEndian.Uint32(data[24:28]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(data[40:44]))
	assert.Equal(t, pcm, data[wavHeaderSize:])

	_, err = os.Stat(out + ".part")
	assert.True(t, os.IsNotExist(err))
}

func TestEngine_Synthesize_StandardEngine(t *testing.T) {
	client := &fakePollyClient{
		out: &pollysdk.SynthesizeSpeechOutput{AudioStream: io.NopCloser(bytes.NewReader([]byte{0, 0}))},
	}
	engine := newEngineWithClient(Config{Engine: "standard", VoiceID: "Joanna"}, client)

	require.NoError(t, engine.Synthesize(context.Background(), "hi", filepath.Join(t.TempDir(), "a.wav")))
	assert.Equal(t, pollytypes.EngineStandard, client.input.Engine)
	assert.Equal(t, pollytypes.VoiceId("Joanna"), client.input.VoiceId)
}

func TestEngine_Synthesize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		client  *fakePollyClient
		wantErr error
	}{
		{name: "throttled", client: &fakePollyClient{err: fakeAPIError{code: "TooManyRequestsException", msg: "rate"}}, wantErr: ErrThrottled},
		{name: "rejected", client: &fakePollyClient{err: fakeAPIError{code: "TextLengthExceededException", msg: "too long"}}, wantErr: ErrRejected},
		{name: "timeout", client: &fakePollyClient{err: context.DeadlineExceeded}, wantErr: context.DeadlineExceeded},
		{name: "nil stream", client: &fakePollyClient{out: &pollysdk.SynthesizeSpeechOutput{}}, wantErr: ErrEmptyStream},
		{name: "empty stream", client: &fakePollyClient{out: &pollysdk.SynthesizeSpeechOutput{AudioStream: io.NopCloser(bytes.NewReader(nil))}}, wantErr: ErrEmptyStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "a.wav")
			err := newEngineWithClient(Config{}, tt.client).Synthesize(context.Background(), "hi", out)
			assert.ErrorIs(t, err, tt.wantErr)
			_, statErr := os.Stat(out)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestEngine_Synthesize_TransportError(t *testing.T) {
	err := newEngineWithClient(Config{}, &fakePollyClient{err: errors.New("tcp reset")}).
		Synthesize(context.Background(), "hi", filepath.Join(t.TempDir(), "a.wav"))
	assert.ErrorContains(t, err, "tcp reset")
}

func TestEngine_ValidateConfig(t *testing.T) {
	engine := NewEngine()
	assert.NoError(t, engine.ValidateConfig(map[string]interface{}{"engine": "neural", "region": "eu-west-1"}))
	assert.NoError(t, engine.ValidateConfig(nil))
	assert.Error(t, engine.ValidateConfig(map[string]interface{}{"engine": "generative-plus"}))
}

func TestEngine_WithSettings(t *testing.T) {
	synth, err := NewEngine().WithSettings(map[string]interface{}{
		"region":   "eu-west-1",
		"voice_id": "Brian",
		"timeout":  "10s",
	})
	require.NoError(t, err)

	engine, ok := synth.(*Engine)
	require.True(t, ok)
	assert.Equal(t, "eu-west-1", engine.cfg.Region)
	assert.Equal(t, "Brian", engine.cfg.VoiceID)
	assert.Equal(t, "neural", engine.cfg.Engine)
	assert.Equal(t, EngineName, engine.Name())
}
