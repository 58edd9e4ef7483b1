package main

import (
	"context"
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"fluentfield.org/boardgame-web/internal/catalog"
	"fluentfield.org/boardgame-web/internal/config"
	"fluentfield.org/boardgame-web/internal/format"
	mw "fluentfield.org/boardgame-web/internal/middleware"
	"fluentfield.org/boardgame-web/internal/view"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode is set in main() based on env: BOARDGAME_WEB_DEV (preferred) or DEV (fallback)
	devMode   bool
	tmplCache *template.Template

	// deck is the load result for the configured card source, resolved once
	// at startup. A failed load keeps the site up with an error placeholder.
	deck  catalog.Result
	tiers = view.DefaultTiers()

	deckSource string
)

func main() {
	cfg, err := config.Load(os.Getenv("BOARDGAME_WEB_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var (
		addr     string
		tmplPath string
		pubPath  string
		deckPath string
	)
	flag.StringVar(&addr, "addr", cfg.Addr, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", cfg.TemplatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", cfg.PublicDir, "public assets directory")
	flag.StringVar(&deckPath, "deck", cfg.DeckSource, "card deck source (file path or URL)")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath
	deckSource = deckPath
	devMode = cfg.Dev
	if cfg.MobileBatch > 0 {
		tiers.MobileBatch = cfg.MobileBatch
	}
	if cfg.DesktopBatch > 0 {
		tiers.DesktopBatch = cfg.DesktopBatch
	}
	if cfg.MobileMaxWidth > 0 {
		tiers.MobileMaxWidth = cfg.MobileMaxWidth
	}

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			log.Fatalf("parse templates: %v", err)
		}
		tmplCache = tc
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	deck = catalog.NewLoader(deckSource).Load(ctx)
	cancel()
	if deck.State == catalog.StateFailed {
		log.Printf("deck load failed (serving placeholder): %v", deck.Err)
	} else {
		log.Printf("deck loaded: %d cards", deck.Catalog.Len())
	}

	r := routes()

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("web listening on %s (devMode=%v)", addr, devMode)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}

func routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, cardsPath, http.StatusFound)
	})
	r.Get("/cards", CardsHandler)
	r.Get("/cards/frag/list", CardListFrag)
	r.Get("/cards/frag/modal", CardModalFrag)
	r.Get("/how-to-play", HowToPlayHandler)

	r.Get("/data/cards.json", DeckHandler)
	r.Post("/api/speech/plan", SpeechPlanHandler)

	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now":   time.Now,
		"count": format.Count,
		"level": format.Level,
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func lookupTemplates(w http.ResponseWriter) *template.Template {
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return nil
		}
		return tc
	}
	if tmplCache == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return nil
	}
	return tmplCache
}

// render executes the base layout. In dev mode, templates are reparsed on
// each request.
func render(w http.ResponseWriter, r *http.Request, data any) {
	renderTemplate(w, r, "base", data)
}

// renderTemplate executes a named template, used for htmx fragments.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	t := lookupTemplates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}
