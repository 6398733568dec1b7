package server

import (
	"fmt"
	"net"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/config"
	"github.com/NeuralTrust/TutorGate/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	TutorServerDI struct {
		Config *config.Config
		Logger *logrus.Logger
		Router router.ServerRouter
	}
	TutorServer struct {
		*BaseServer
		router router.ServerRouter
	}
)

func NewTutorServer(di TutorServerDI) *TutorServer {
	return &TutorServer{
		BaseServer: NewBaseServer(di.Config, di.Logger),
		router:     di.Router,
	}
}

func (s *TutorServer) Run() error {
	s.WithRouters(s.router)
	s.setupMetricsEndpoint()

	addr := net.JoinHostPort(s.Config.Server.Host, fmt.Sprint(s.Config.Server.Port))
	s.Logger.WithField("addr", addr).Info("starting tutor server")
	return s.Router.Listen(addr)
}

func (s *TutorServer) Shutdown(timeout time.Duration) error {
	return s.shutdown(timeout)
}
