// Copyright 2025 go-sortviz Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package visual

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/ssh/terminal"
)

const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J"
)

// DefaultFPS is the frame rate used when Options.FPS is unset.
const DefaultFPS = 60

// Run shows the visualizer on the terminal attached to in and out until the
// user quits or ctx is done. The terminal is put in raw mode for the
// duration and restored before returning.
func Run(ctx context.Context, in, out *os.File, opts Options) error {
	inFd, outFd := int(in.Fd()), int(out.Fd())
	if !terminal.IsTerminal(inFd) || !terminal.IsTerminal(outFd) {
		return errors.New("the visualizer needs an interactive terminal")
	}
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	width, height, err := terminal.GetSize(outFd)
	if err != nil {
		return errors.Wrap(err, "reading terminal size")
	}
	opts.Width, opts.Height = width, height

	m, err := NewModel(opts)
	if err != nil {
		return err
	}

	state, err := terminal.MakeRaw(inFd)
	if err != nil {
		return errors.Wrap(err, "switching terminal to raw mode")
	}
	defer terminal.Restore(inFd, state)

	if _, err := io.WriteString(out, hideCursor+clearScreen); err != nil {
		return errors.Wrap(err, "preparing screen")
	}
	defer func() {
		if _, err := io.WriteString(out, showCursor+"\r\n"); err != nil {
			opts.Logger.Warn("restoring cursor", zap.Error(err))
		}
	}()

	opts.Logger.Info("visualizer started",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("fps", opts.FPS),
		zap.String("algorithm", m.Algorithm.Name))

	keys := make(chan byte, 16)
	done := make(chan struct{})
	defer close(done)
	go readKeys(in, keys, done)

	ticker := time.NewTicker(time.Second / time.Duration(opts.FPS))
	defer ticker.Stop()

	return loop(ctx, m, keys, ticker.C, out, func() (int, int, error) {
		return terminal.GetSize(outFd)
	})
}

// loop is the frame loop: keys are applied as they arrive, and every tick
// advances the model and redraws it.
func loop(ctx context.Context, m *Model, keys <-chan byte, ticks <-chan time.Time, out io.Writer, size func() (int, int, error)) error {
	if err := Draw(out, m); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case k, ok := <-keys:
			if !ok {
				return nil
			}
			m.HandleKey(k)
			if m.Quit {
				return nil
			}
		case <-ticks:
			if w, h, err := size(); err == nil && m.Layout.Resize(w, h) {
				if _, err := io.WriteString(out, clearScreen); err != nil {
					return errors.Wrap(err, "clearing screen")
				}
			}
			m.Tick()
			if err := Draw(out, m); err != nil {
				return err
			}
		}
	}
}

// readKeys forwards single key presses from r to keys until r fails or done
// is closed. Multi-byte escape sequences (arrow keys, function keys) are
// dropped. A Read blocked on the terminal returns only with the next key.
func readKeys(r io.Reader, keys chan<- byte, done <-chan struct{}) {
	defer close(keys)
	var buf [16]byte
	for {
		n, err := r.Read(buf[:])
		if err != nil {
			return
		}
		if n > 1 && buf[0] == KeyEsc {
			continue
		}
		for _, k := range buf[:n] {
			select {
			case keys <- k:
			case <-done:
				return
			}
		}
	}
}
