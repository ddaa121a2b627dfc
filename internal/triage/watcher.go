package triage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"aikit/pkg/deduper"
)

const analysisSuffix = ".analysis.json"

// Watcher polls an inbox directory for ticket files and writes an analysis
// file per ticket into the results directory.
type Watcher struct {
	Analyzer     *Analyzer
	InboxDir     string
	OutDir       string
	PollInterval time.Duration
	Deduper      *deduper.Deduper
}

func NewWatcher(analyzer *Analyzer, inboxDir, outDir string, pollInterval time.Duration, dedup *deduper.Deduper) *Watcher {
	if outDir == "" {
		outDir = inboxDir
	}
	return &Watcher{
		Analyzer:     analyzer,
		InboxDir:     inboxDir,
		OutDir:       outDir,
		PollInterval: pollInterval,
		Deduper:      dedup,
	}
}

// Start begins the polling loop and stops when the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-ctx.Done():
			logrus.Info("triage watcher: context cancelled, stopping polling loop")
			return
		}
	}
}

// sweep analyzes every new ticket file in the inbox.
func (w *Watcher) sweep(ctx context.Context) {
	entries, err := os.ReadDir(w.InboxDir)
	if err != nil {
		logrus.Errorf("triage watcher: reading inbox: %v", err)
		return
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") || strings.HasSuffix(e.Name(), analysisSuffix) {
			continue
		}
		if ctx.Err() != nil {
			return
		}

		path := filepath.Join(w.InboxDir, e.Name())
		b, err := os.ReadFile(path)
		if err != nil {
			logrus.Errorf("triage watcher: reading %s: %v", path, err)
			continue
		}

		hash := sha1.Sum(b)
		hashStr := hex.EncodeToString(hash[:])
		if w.Deduper.Seen(hashStr) {
			logrus.Debugf("triage watcher: skipping duplicate %s (hash=%s)", e.Name(), hashStr)
			continue
		}

		var t Ticket
		if err := json.Unmarshal(b, &t); err != nil {
			logrus.Errorf("triage watcher: decoding %s: %v", path, err)
			continue
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}

		analysis, err := w.Analyzer.Analyze(ctx, t)
		if err != nil {
			logrus.Errorf("triage watcher: analyzing ticket %s: %v", t.ID, err)
			continue
		}

		out, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			logrus.Errorf("triage watcher: encoding analysis for %s: %v", t.ID, err)
			continue
		}
		dst := filepath.Join(w.OutDir, t.ID+analysisSuffix)
		if err := os.WriteFile(dst, out, 0644); err != nil {
			logrus.Errorf("triage watcher: writing %s: %v", dst, err)
			continue
		}
		logrus.Infof("triage watcher: analyzed ticket %s (category=%s urgency=%s)", t.ID, analysis.Category, analysis.Urgency)
	}
}
