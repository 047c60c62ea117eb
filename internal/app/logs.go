package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/five82/storedash/internal/config"
	"github.com/five82/storedash/internal/logtail"
)

// Logs prints the last lines of the configured log file. With problemsOnly
// it prints only warnings and errors as "time store op error".
func Logs(opts Options, lines int, problemsOnly bool, w io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	raw, err := logtail.Read(cfg.LogFile, lines)
	if err != nil {
		return err
	}

	var b strings.Builder
	if !problemsOnly {
		for _, line := range raw {
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		for _, e := range logtail.Problems(raw) {
			detail := e.Attr("error")
			if detail == "" {
				detail = e.Msg
			}
			fmt.Fprintf(&b, "%s\t%s\t%s\t%s\t%s\n",
				e.Time.Format("2006-01-02 15:04:05"), e.Level, e.Attr("store"), e.Attr("op"), detail)
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write logs: %w", err)
	}
	return nil
}
