// Command calcstub is a local stand-in for the remote calculation service.
// It serves the same JSON contract the form consumes, backed by a SQLite
// scale master loaded with cmd/maestro-import.
package main

import (
	"log"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/valyala/fasthttp"

	"github.com/ldamico/sueldos-comercio/internal/adapters/sqlite"
	"github.com/ldamico/sueldos-comercio/internal/calcengine"
	"github.com/ldamico/sueldos-comercio/internal/domain"
)

type server struct {
	repo *sqlite.Repository
}

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
	dsn := os.Getenv("DB_PATH")
	if dsn == "" {
		dsn = "escalas.db"
	}
	port := os.Getenv("CALC_PORT")
	if port == "" {
		port = "9090"
	}

	repo, err := sqlite.New(dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer repo.Close()

	s := &server{repo: repo}
	log.Printf("Calculation stub running on http://localhost:%s", port)
	log.Printf("Database: %s", dsn)
	if err := fasthttp.ListenAndServe(":"+port, s.route); err != nil {
		log.Fatal(err)
	}
}

func (s *server) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	switch {
	case path == "/api/meta" && ctx.IsGet():
		s.meta(ctx)
	case path == "/api/escala" && ctx.IsGet():
		s.escala(ctx)
	case path == "/api/calc/mensual" && ctx.IsPost():
		s.calcMensual(ctx)
	case path == "/api/calc/final" && ctx.IsPost():
		s.calcFinal(ctx)
	default:
		detail(ctx, fasthttp.StatusNotFound, "Not Found")
	}
}

func (s *server) meta(ctx *fasthttp.RequestCtx) {
	meta, err := s.repo.Metadata(ctx)
	if err != nil {
		detail(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	ok(ctx, meta)
}

// escala exposes a single scale row for debugging imports.
func (s *server) escala(ctx *fasthttp.RequestCtx) {
	q := ctx.QueryArgs()
	fila, err := s.repo.Find(ctx,
		string(q.Peek("rama")), string(q.Peek("agrup")),
		string(q.Peek("categoria")), string(q.Peek("mes")))
	if err != nil {
		detail(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	if fila == nil {
		detail(ctx, fasthttp.StatusUnprocessableEntity, calcengine.ErrEscalaNoEncontrada.Error())
		return
	}
	ok(ctx, fila)
}

func (s *server) calcMensual(ctx *fasthttp.RequestCtx) {
	var in domain.EntradaMensual
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		detail(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	// RequestCtx implements context.Context; a dropped connection
	// cancels the scale lookup.
	res, err := calcengine.Mensual(ctx, s.repo, &in)
	if err != nil {
		status := fasthttp.StatusInternalServerError
		if err == calcengine.ErrEscalaNoEncontrada {
			status = fasthttp.StatusUnprocessableEntity
		}
		detail(ctx, status, err.Error())
		return
	}
	res.Meta.CalculoID = uuid.New().String()
	ok(ctx, res)
}

func (s *server) calcFinal(ctx *fasthttp.RequestCtx) {
	var in domain.EntradaFinal
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		detail(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	res, err := calcengine.Final(&in)
	if err != nil {
		// Bad dates are an input problem, not a server fault.
		detail(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	res.Meta.CalculoID = uuid.New().String()
	ok(ctx, res)
}

func ok(ctx *fasthttp.RequestCtx, body any) {
	ctx.SetContentType("application/json")
	raw, err := json.Marshal(body)
	if err != nil {
		detail(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	ctx.SetBody(raw)
}

// detail writes the {"detail": msg} error envelope the form client expects.
func detail(ctx *fasthttp.RequestCtx, status int, msg string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	raw, _ := json.Marshal(map[string]string{"detail": msg})
	ctx.SetBody(raw)
}
