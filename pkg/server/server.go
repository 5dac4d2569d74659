package server

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/zhouyb126/sensitive-words/pkg/config"
	"github.com/zhouyb126/sensitive-words/pkg/dictionary"
)

// Server handles the IPC for text masking
type Server struct {
	loader *dictionary.Loader
	cfg    *config.Config
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
}

// NewServer creates a masking server using stdin/stdout for IPC
func NewServer(loader *dictionary.Loader, cfg *config.Config) *Server {
	return NewServerIO(loader, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a masking server over an arbitrary transport.
func NewServerIO(loader *dictionary.Loader, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		loader: loader,
		cfg:    cfg,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting masking server.")

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			// A failed decode leaves the stream position unknown, so this
			// is not recoverable the way a bad-but-parseable request is.
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest routes one decoded request
func (s *Server) handleRequest(request Request) {
	if request.Action != "" {
		s.handleDict(request)
		return
	}
	s.handleMask(request)
}

func (s *Server) sendResponse(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}

// handleMask masks one text. Masking itself cannot fail; errors here are
// protocol level only (missing or oversized text).
func (s *Server) handleMask(request Request) {
	if request.Text == "" {
		s.sendError(request.ID, "missing 't' parameter", 400)
		log.Debug("Text is empty in request")
		return
	}
	if max := s.cfg.Server.MaxTextLen; max > 0 && len(request.Text) > max {
		s.sendError(request.ID, "text exceeds configured maximum length", 400)
		return
	}

	replace := config.ReplaceRune(request.Replace)
	if request.Replace == "" {
		replace = config.ReplaceRune(s.cfg.Server.ReplaceChar)
	}

	start := time.Now()
	masked, matched := s.loader.Filter().MaskCount(request.Text, replace)
	elapsed := time.Since(start)

	s.sendResponse(MaskResponse{
		ID:        request.ID,
		Text:      masked,
		Matched:   matched,
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleDict processes dictionary management actions
func (s *Server) handleDict(request Request) {
	switch request.Action {
	case "get_info":
		stats := s.loader.Stats()
		s.sendResponse(DictResponse{
			ID:        request.ID,
			Status:    "ok",
			WordCount: s.loader.Filter().Len(),
			TableSize: s.loader.Filter().TableSize(),
			Accepted:  stats.Accepted,
			Skipped:   stats.Skipped,
		})
	case "add_words":
		accepted, skipped := 0, 0
		for _, w := range request.Words {
			if s.loader.AddWord(w) {
				accepted++
			} else {
				skipped++
			}
		}
		log.Debugf("add_words: %d accepted, %d skipped", accepted, skipped)
		s.sendResponse(DictResponse{
			ID:       request.ID,
			Status:   "ok",
			Accepted: accepted,
			Skipped:  skipped,
		})
	case "lookup":
		if request.Prefix == "" {
			s.sendError(request.ID, "missing 'p' parameter", 400)
			return
		}
		words := s.loader.WordsWithPrefix(request.Prefix, request.Limit)
		s.sendResponse(DictResponse{
			ID:     request.ID,
			Status: "ok",
			Words:  words,
		})
	default:
		s.sendError(request.ID, "unknown action: "+request.Action, 400)
	}
}
