// Package cli implements the interactive console session: language
// selection, topic prompts, and rendering of the per-query results.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"newsdesk/internal/display"
	"newsdesk/internal/i18n"
	"newsdesk/internal/usecase/search"
)

// state enumerates the session's positions. Every prompt belongs to
// exactly one state, and every transition is explicit in Run.
type state int

const (
	stateSelectLanguage state = iota
	stateAwaitTopic
	stateShowResults
	stateExit
)

// exitWords end the session from any prompt.
var exitWords = map[string]bool{"quit": true, "exit": true, "q": true}

// declineWords answer the "search another topic?" prompt negatively.
// Anything else continues the session.
var declineWords = map[string]bool{"n": true, "no": true, "nein": true}

// REPL drives one interactive session. It owns no model or network state;
// all of that lives behind the search service.
type REPL struct {
	in     *bufio.Scanner
	out    io.Writer
	tr     *i18n.Translator
	search *search.Service
	logger *slog.Logger

	lang  string
	topic string
}

// New builds a session over the given streams. Tests pass a scripted
// reader and a buffer.
func New(in io.Reader, out io.Writer, tr *i18n.Translator, svc *search.Service, logger *slog.Logger) *REPL {
	if logger == nil {
		logger = slog.Default()
	}
	return &REPL{
		in:     bufio.NewScanner(in),
		out:    out,
		tr:     tr,
		search: svc,
		logger: logger,
		lang:   i18n.DefaultLanguage,
	}
}

// Run loops the state machine until the session exits. Context
// cancellation (Ctrl-C) is checked between states so an interrupt lands
// at the next prompt boundary instead of mid-render.
func (r *REPL) Run(ctx context.Context) error {
	r.banner(r.t("app.welcome", nil))

	st := stateSelectLanguage
	for st != stateExit {
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			r.printSuccess(r.t("app.interrupted", nil))
			return nil
		default:
		}

		switch st {
		case stateSelectLanguage:
			st = r.selectLanguage()
		case stateAwaitTopic:
			st = r.awaitTopic()
		case stateShowResults:
			st = r.showResults(ctx)
		}
	}

	r.printSuccess(r.t("app.goodbye", nil))
	return nil
}

// selectLanguage prompts until the user picks 1 (English) or 2 (German),
// or ends the session.
func (r *REPL) selectLanguage() state {
	fmt.Fprintln(r.out, headerStyle.Render(r.t("language.select", nil)))
	fmt.Fprintf(r.out, "  1. %s\n", r.t("language.english", nil))
	fmt.Fprintf(r.out, "  2. %s\n", r.t("language.german", nil))

	for {
		line, ok := r.readLine(r.t("language.prompt", nil))
		if !ok || exitWords[strings.ToLower(line)] {
			return stateExit
		}
		switch line {
		case "1":
			r.lang = "en"
		case "2":
			r.lang = "de"
		default:
			r.printError(r.t("language.invalid", nil))
			continue
		}
		r.logger.Info("language selected", slog.String("language", r.lang))
		return stateAwaitTopic
	}
}

// awaitTopic prompts for a non-empty topic or an exit word.
func (r *REPL) awaitTopic() state {
	for {
		line, ok := r.readLine(r.t("search.prompt", nil))
		if !ok || exitWords[strings.ToLower(line)] {
			return stateExit
		}
		if line == "" {
			r.printError(r.t("search.invalid_topic", nil))
			continue
		}
		r.topic = line
		return stateShowResults
	}
}

// showResults runs the query for the current topic and renders every
// branch of the result, then asks whether to continue. Query errors are
// displayed and the session goes on; they never terminate the loop.
func (r *REPL) showResults(ctx context.Context) state {
	fmt.Fprintln(r.out, dimStyle.Render(r.t("search.searching", map[string]any{
		"query":    r.topic,
		"language": r.lang,
	})))
	fmt.Fprintln(r.out, dimStyle.Render(r.t("search.please_wait", nil)))

	result, err := r.search.Run(ctx, r.topic, r.lang)
	switch {
	case errors.Is(err, context.Canceled):
		return stateExit
	case err != nil:
		r.printError(r.t("search.error", map[string]any{"error": err.Error()}))
	case result.Empty():
		fmt.Fprintln(r.out, r.t("search.no_results", nil))
	default:
		r.renderResult(result)
	}

	return r.askContinue()
}

func (r *REPL) renderResult(result *search.Result) {
	fmt.Fprintln(r.out, r.t("search.found", map[string]any{"count": len(result.Articles)}))

	r.banner(r.t("display.top_articles", map[string]any{"count": len(result.TopN)}))
	r.renderEntries(display.NewIterator(result.TopN, r.search.Limit))

	r.banner(r.t("display.summary", nil))
	if result.SummaryErr != nil {
		r.printError(r.t("analysis.summary_error", map[string]any{"error": result.SummaryErr.Error()}))
	} else {
		fmt.Fprintln(r.out, result.Summary)
	}

	r.banner(r.t("display.entities", nil))
	switch {
	case result.EntitiesErr != nil:
		r.printError(r.t("analysis.entities_error", map[string]any{"error": result.EntitiesErr.Error()}))
	case len(result.Entities) == 0:
		fmt.Fprintln(r.out, r.t("entities.none", nil))
	default:
		r.renderEntityTable(result.Entities)
	}

	r.divider()
	if result.CSVErr != nil {
		r.printError(r.t("csv.error", map[string]any{"error": result.CSVErr.Error()}))
	} else if result.CSVPath != "" {
		r.printSuccess(r.t("display.saved", map[string]any{
			"count": len(result.Articles),
			"file":  result.CSVPath,
		}))
	}
}

// askContinue returns to language selection unless the user declines or
// ends the input stream.
func (r *REPL) askContinue() state {
	line, ok := r.readLine(r.t("search.another", nil))
	if !ok {
		return stateExit
	}
	if declineWords[strings.ToLower(line)] || exitWords[strings.ToLower(line)] {
		return stateExit
	}
	return stateSelectLanguage
}

// readLine prints the prompt and reads one trimmed line. ok is false on
// EOF, which every caller treats as a request to exit.
func (r *REPL) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		fmt.Fprintln(r.out)
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *REPL) t(key string, vars map[string]any) string {
	return r.tr.T(r.lang, key, vars)
}
