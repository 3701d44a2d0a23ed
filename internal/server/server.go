package server

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/raymondkneipp/cash-money/internal/calculation"
	"github.com/raymondkneipp/cash-money/internal/config"
	"github.com/raymondkneipp/cash-money/internal/domain"
)

// Server exposes the projection engine over HTTP. It is stateless: every
// request carries a full scenario snapshot, so callers simply POST again
// whenever their records change.
type Server struct {
	engine *calculation.Engine
	parser *config.InputParser
	logger calculation.Logger
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// New creates a server around an engine. A nil logger disables logging.
func New(engine *calculation.Engine, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{
		engine: engine,
		parser: config.NewInputParser(),
		logger: logger,
	}
}

// Handler routes requests; pass it to fasthttp.ListenAndServe.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	case "/v1/projection":
		s.handleProjection(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "use POST")
		return
	}

	var scenario domain.Scenario
	if err := json.Unmarshal(ctx.PostBody(), &scenario); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	config.Normalize(&scenario)
	if err := s.parser.ValidateScenario(&scenario); err != nil {
		s.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}

	report, err := s.engine.RunScenario(context.Background(), &scenario)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	body, err := json.Marshal(report)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	s.logger.Infof("projected scenario %q: %d points", scenario.Name, len(report.Projection))
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("listening on %s", addr)
	if err := fasthttp.ListenAndServe(addr, s.Handler); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
