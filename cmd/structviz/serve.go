// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/structviz"
	"github.com/cockroachdb/structviz/internal/rate"
	"github.com/cockroachdb/structviz/render"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveConfig struct {
	addr        string
	rate        float64
	burst       float64
	maxFrames   int
	maxSessions int
	maxCapacity int
}

var serveCmd = &cobra.Command{
	Use:   "serve (flags)",
	Short: "serve structures over HTTP",
	Long: `
Serve structures over HTTP. Every session owns one structure:

  POST   /sessions?kind=<kind>[&capacity=<n>]  create a session
  POST   /sessions/{id}/exec                   run the script in the body
  GET    /sessions/{id}/frame                  last frame as JSON
  GET    /sessions/{id}/ascii                  last frame as text
  GET    /sessions/{id}/url                    viewer URL of all frames
  DELETE /sessions/{id}                        drop a session
  GET    /metrics                              Prometheus metrics
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		reg := prometheus.NewRegistry()
		srv := newServer(opts, reg)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return srv.listenAndServe(ctx, serveConfig.addr)
	},
}

// session is a structure with its recorder and admission limiter. Structures
// are not safe for concurrent use; mu serializes the commands.
type session struct {
	id      uuid.UUID
	limiter *rate.Limiter
	rec     *render.Recorder

	mu struct {
		sync.Mutex
		s        structviz.Structure
		messages []string
		output   []string
	}
}

type server struct {
	opts    *structviz.Options
	latency prometheus.Histogram
	handler http.Handler

	mu struct {
		sync.Mutex
		sessions map[uuid.UUID]*session
	}
}

func newServer(opts *structviz.Options, reg *prometheus.Registry) *server {
	s := &server{opts: opts}
	s.mu.sessions = make(map[uuid.UUID]*session)
	s.latency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "structviz",
		Name:      "operation_latency_seconds",
		Help:      "Wall-clock duration of structure operations.",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
	})
	reg.MustRegister(s.latency)
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "structviz",
		Name:      "sessions",
		Help:      "Number of live sessions.",
	}, func() float64 {
		s.mu.Lock()
		defer s.mu.Unlock()
		return float64(len(s.mu.sessions))
	}))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /sessions", s.create)
	mux.HandleFunc("POST /sessions/{id}/exec", s.withSession(s.exec))
	mux.HandleFunc("GET /sessions/{id}/frame", s.withSession(s.frame))
	mux.HandleFunc("GET /sessions/{id}/ascii", s.withSession(s.ascii))
	mux.HandleFunc("GET /sessions/{id}/url", s.withSession(s.url))
	mux.HandleFunc("DELETE /sessions/{id}", s.withSession(s.drop))
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	s.handler = mux
	return s
}

func (s *server) listenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.handler}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on %s", addr)
		if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *server) create(w http.ResponseWriter, r *http.Request) {
	kind, err := structviz.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var cfg structviz.Config
	if v := r.URL.Query().Get("capacity"); v != "" {
		cfg.Capacity, err = strconv.Atoi(v)
		if err != nil || cfg.Capacity <= 0 {
			http.Error(w, fmt.Sprintf("invalid capacity %q", v), http.StatusBadRequest)
			return
		}
		if cfg.Capacity > serveConfig.maxCapacity {
			http.Error(w, fmt.Sprintf("capacity %d exceeds the maximum of %d",
				cfg.Capacity, serveConfig.maxCapacity), http.StatusBadRequest)
			return
		}
	}

	sess := &session{
		id:      uuid.New(),
		limiter: rate.NewLimiter(serveConfig.rate, serveConfig.burst),
		rec:     render.NewRecorder(serveConfig.maxFrames),
	}
	opts := s.opts.Clone()
	opts.Renderer = sess.rec
	opts.MaxCapacity = serveConfig.maxCapacity
	opts.OperationLatency = s.latency
	l := structviz.EventListener{
		Message: func(info structviz.MessageInfo) {
			sess.mu.messages = append(sess.mu.messages, info.String())
		},
		OutputLine: func(info structviz.OutputLineInfo) {
			if info.Replace && len(sess.mu.output) > 0 {
				sess.mu.output[len(sess.mu.output)-1] = info.Text
				return
			}
			sess.mu.output = append(sess.mu.output, info.Text)
		},
	}
	if verbose {
		l = structviz.TeeEventListener(l, structviz.MakeLoggingEventListener(opts.Logger))
	}
	opts.EventListener = &l
	sess.mu.s = structviz.New(kind, opts)
	sess.mu.s.Init(cfg)

	s.mu.Lock()
	if len(s.mu.sessions) >= serveConfig.maxSessions {
		s.mu.Unlock()
		http.Error(w, "too many sessions", http.StatusServiceUnavailable)
		return
	}
	s.mu.sessions[sess.id] = sess
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]string{"id": sess.id.String(), "kind": kind.String()})
}

func (s *server) withSession(
	fn func(w http.ResponseWriter, r *http.Request, sess *session),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		sess, ok := s.mu.sessions[id]
		s.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		fn(w, r, sess)
	}
}

type execResponse struct {
	Messages []string `json:"messages"`
	Output   []string `json:"output"`
	Error    string   `json:"error,omitempty"`
}

func (s *server) exec(w http.ResponseWriter, r *http.Request, sess *session) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	script := string(body)
	var n float64
	for range crstrings.LinesSeq(script) {
		n++
	}
	if ok, d := sess.limiter.Allow(n); !ok {
		w.Header().Set("Retry-After", strconv.Itoa(int(d.Seconds())+1))
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.mu.messages = sess.mu.messages[:0]
	sess.mu.output = sess.mu.output[:0]
	var res execResponse
	status := http.StatusOK
	if err := structviz.ExecScript(sess.mu.s, script); err != nil {
		res.Error = err.Error()
		status = http.StatusUnprocessableEntity
	}
	res.Messages = append([]string{}, sess.mu.messages...)
	res.Output = append([]string{}, sess.mu.output...)
	writeJSON(w, status, res)
}

func (s *server) frame(w http.ResponseWriter, r *http.Request, sess *session) {
	sess.mu.Lock()
	etag := fmt.Sprintf(`"%x"`, sess.mu.s.Snapshot().Fingerprint())
	sess.mu.Unlock()
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	f, ok := sess.rec.Last()
	if !ok {
		http.Error(w, "no frames", http.StatusNotFound)
		return
	}
	w.Header().Set("ETag", etag)
	writeJSON(w, http.StatusOK, f)
}

func (s *server) ascii(w http.ResponseWriter, r *http.Request, sess *session) {
	f, ok := sess.rec.Last()
	if !ok {
		http.Error(w, "no frames", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, render.ASCII(f, asciiOptions(s.opts)))
}

func (s *server) url(w http.ResponseWriter, r *http.Request, sess *session) {
	codec := render.Snappy
	if name := r.URL.Query().Get("codec"); name != "" {
		var err error
		if codec, err = render.ParseCodec(name); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	u, err := render.GenerateURL(render.DefaultViewerURL, sess.rec.Frames(), codec)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, u.String())
}

func (s *server) drop(w http.ResponseWriter, r *http.Request, sess *session) {
	s.mu.Lock()
	delete(s.mu.sessions, sess.id)
	s.mu.Unlock()
	sess.mu.Lock()
	sess.mu.s.Reset()
	sess.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writing response: %v", err)
	}
}
