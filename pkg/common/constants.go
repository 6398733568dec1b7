package common

import "time"

const (
	SessionRetention     = 24 * time.Hour
	SessionSweepInterval = 1 * time.Hour
	SessionIDLength      = 8

	AnswerTimeout      = 30 * time.Second
	AnswerPingTimeout  = 5 * time.Second
	AnswerMinLength    = 50
	SpeechMaxChars     = 500
	TranscodeTimeout   = 10 * time.Second
	RenderTimeout      = 300 * time.Second
	ShutdownTaskWait   = 5 * time.Second
	StatusPollInterval = 1 * time.Second
	StatusStreamLimit  = 10 * time.Minute

	AudioFilePrefix = "audio_"
	VideoFilePrefix = "video_"
	AudioExt        = ".wav"
	VideoExt        = ".mp4"

	AudioRoutePrefix = "/api/audio/"
	VideoRoutePrefix = "/api/video/"

	StageSpeech    = "speech"
	StageNormalize = "normalize"
	StageRender    = "render"
)
