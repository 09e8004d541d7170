package internal

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key     string
	Room    string
	Author  string
	When    string
	Content string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// DebugServer serves a read-only HTML view over the badger store plus
// process statistics. It runs as a supervised worker.
type DebugServer struct {
	db     *badger.DB
	port   int
	mapper RowMapper
	stats  StatsProvider
	log    *slog.Logger
}

func NewDebugServer(db *badger.DB, port int, mapper RowMapper,
	stats StatsProvider, log *slog.Logger) *DebugServer {
	if mapper == nil {
		mapper = DefaultMapper
	}
	return &DebugServer{db: db, port: port, mapper: mapper, stats: stats, log: log}
}

func (s *DebugServer) Run(ctx context.Context) error {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux := http.NewServeMux()
	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "msg:"
		}
		rows, err := s.scan(prefix)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data := PageData{Prefix: prefix, Items: rows, Stats: s.collectStats()}
		if err := tmpl.Execute(w, data); err != nil {
			s.log.Warn("Rendering inspect page failed", "error", err)
		}
	})

	srv := &http.Server{Addr: fmt.Sprintf(":%d", s.port), Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info(fmt.Sprintf("Debug server listening on :%d/inspect", s.port))
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return ctx.Err()
}

func (s *DebugServer) scan(prefix string) ([]InspectRow, error) {
	var rows []InspectRow
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		it := txn.NewIterator(options)
		defer it.Close()
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(val []byte) error {
				rows = append(rows, s.mapper(key, val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return rows, err
}

func (s *DebugServer) collectStats() map[string]any {
	stats := map[string]any{
		"Goroutines": runtime.NumGoroutine(),
		"Time":       time.Now().Format(time.RFC822),
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats["MemUsedPercent"] = fmt.Sprintf("%.1f%%", vm.UsedPercent)
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats["CPUPercent"] = fmt.Sprintf("%.1f%%", percents[0])
	}
	if s.stats != nil {
		for k, v := range s.stats() {
			stats[k] = v
		}
	}
	return stats
}

// DefaultMapper shows the raw key and a value preview when no
// domain-aware mapper is registered for a prefix.
func DefaultMapper(key string, val []byte) InspectRow {
	preview := string(val)
	if len(preview) > 120 {
		preview = preview[:120] + "…"
	}
	return InspectRow{
		Key:     key,
		Content: strings.ToValidUTF8(preview, "·"),
	}
}
