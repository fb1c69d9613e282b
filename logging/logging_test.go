// seehuhn.de/go/cgm - read and write CGM graphics for NITF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"seehuhn.de/go/cgm/logging"
)

func TestSetLogger(t *testing.T) {
	old := logging.Logger()
	defer logging.SetLogger(old)

	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logging.SetLogger(slog.New(h))

	logging.Logger().Debug("command", slog.String("name", "Circle"))

	if !strings.Contains(buf.String(), "name=Circle") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestDefaultDiscards(t *testing.T) {
	old := logging.Logger()
	defer logging.SetLogger(old)

	logging.SetLogger(nil)
	l := logging.Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Handler() != slog.DiscardHandler {
		t.Error("expected the discard handler after SetLogger(nil)")
	}
}

func TestRecordingHandler(t *testing.T) {
	h := logging.NewRecordingHandler(slog.LevelInfo)
	l := slog.New(h)

	l.Debug("hidden")
	l.Info("command", "class", 4, "code", 12)
	l.With("reader", 1).WithGroup("pc").Warn("reset", "width", 3)

	recs := h.Records()
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Attrs["code"] != "12" {
		t.Errorf("code attribute: got %q", recs[0].Attrs["code"])
	}
	if recs[1].Attrs["reader"] != "1" || recs[1].Attrs["pc.width"] != "3" {
		t.Errorf("unexpected attributes %v", recs[1].Attrs)
	}
	if h.Count("command") != 1 {
		t.Errorf("Count: got %d, want 1", h.Count("command"))
	}

	h.Reset()
	if len(h.Records()) != 0 {
		t.Error("records left after Reset")
	}
}

func TestRecordingHandlerConcurrent(t *testing.T) {
	h := logging.NewRecordingHandler(nil)
	l := slog.New(h)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := l.With("worker", i)
			for j := 0; j < 100; j++ {
				sub.Debug("tick")
			}
		}()
	}
	wg.Wait()

	if n := h.Count("tick"); n != 800 {
		t.Errorf("got %d records, want 800", n)
	}
}
