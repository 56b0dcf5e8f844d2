// Package repl runs the interactive command loop over a session. Each input
// line is one command (see package command); the loop ends on EXIT or at the
// end of input. Errors are reported and the loop carries on.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vk/tombstone/internal/command"
	"github.com/vk/tombstone/internal/ctxlog"
	"github.com/vk/tombstone/internal/lang"
	"github.com/vk/tombstone/internal/render"
	"github.com/vk/tombstone/internal/session"
)

const (
	prompt  = "> "
	welcome = "Welcome to the program simulator! Type HELP for the list of commands."
)

const helpText = `Commands:
  DEFINE PROGRAM <name> <language>             (1 1, DEFINIR PROGRAMA)
  DEFINE INTERPRETER <base> <language>         (1 2, DEFINIR INTERPRETE)
  DEFINE TRANSLATOR <base> <source> <target>   (1 3, DEFINIR TRADUCTOR)
  EXECUTABLE <name>                            (2, EJECUTABLE)
  EXPLAIN <name>                               (EXPLICAR)
  DISPLAY [TEXT|DOT]                           (4, MOSTRAR)
  STATUS                                       (ESTADO)
  HELP                                         (AYUDA, ?)
  EXIT                                         (3, SALIR)`

// REPL reads commands and prints their results.
type REPL struct {
	session *session.Session
	out     io.Writer
	styles  styles
}

// New creates a REPL writing to out.
func New(s *session.Session, out io.Writer) *REPL {
	return &REPL{session: s, out: out, styles: newStyles(out)}
}

// Run reads commands from in until EXIT, end of input or cancellation of ctx.
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("REPL started.")

	fmt.Fprintln(r.out, r.styles.header.Render(welcome))
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(r.out, r.styles.prompt.Render(prompt))
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			break
		}
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		if exit := r.Exec(ctx, scanner.Text()); exit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	logger.Debug("REPL finished.", "stats", r.session.Stats())
	return nil
}

// Exec runs a single command line and reports whether the loop should stop.
func (r *REPL) Exec(ctx context.Context, line string) bool {
	cmd, err := command.Parse(line)
	if err != nil {
		if errors.Is(err, command.ErrEmpty) {
			return false
		}
		r.fail(err)
		return false
	}

	switch cmd.Action {
	case command.ActionExit:
		r.println(r.styles.muted.Render("Bye!"))
		return true
	case command.ActionHelp:
		r.println(helpText)
	case command.ActionDefine:
		r.define(ctx, cmd)
	case command.ActionExecutable:
		r.executable(ctx, cmd.Args[0])
	case command.ActionExplain:
		r.explain(ctx, cmd.Args[0])
	case command.ActionDisplay:
		r.display(cmd.Args[0])
	case command.ActionStatus:
		st := r.session.Stats()
		r.println(fmt.Sprintf("Languages: %d, capabilities: %d, programs: %d, pending translators: %d",
			st.Nodes, st.Edges, st.Programs, st.Pending))
	}
	return false
}

func (r *REPL) define(ctx context.Context, cmd command.Command) {
	a := cmd.Args
	switch cmd.Type {
	case command.TypeProgram:
		if err := r.session.DefineProgram(ctx, a[0], a[1]); err != nil {
			r.fail(err)
			return
		}
		r.println(fmt.Sprintf("Defined program '%s', written in '%s'", a[0], a[1]))
	case command.TypeInterpreter:
		if err := r.session.DefineInterpreter(ctx, a[0], a[1]); err != nil {
			r.fail(err)
			return
		}
		r.println(fmt.Sprintf("Defined an interpreter for '%s', written in '%s'", a[1], a[0]))
	case command.TypeTranslator:
		held, err := r.session.DefineTranslator(ctx, a[0], a[1], a[2])
		if err != nil {
			r.fail(err)
			return
		}
		msg := fmt.Sprintf("Defined a translator from '%s' to '%s', written in '%s'", a[1], a[2], a[0])
		if held {
			msg += " " + r.styles.muted.Render(fmt.Sprintf("(pending until '%s' is executable)", a[0]))
		}
		r.println(msg)
	}
}

func (r *REPL) executable(ctx context.Context, name string) {
	ok, err := r.session.QueryExecutable(ctx, name)
	if err != nil {
		r.fail(err)
		return
	}
	if ok {
		r.println(r.styles.ok.Render("Yes, it is possible to execute the program " + name))
		return
	}
	r.println(r.styles.no.Render("No, it is not possible to execute the program " + name))
}

func (r *REPL) explain(ctx context.Context, name string) {
	exp, err := r.session.Explain(ctx, name)
	if err != nil {
		r.fail(err)
		return
	}
	if exp.Executable {
		r.println(r.styles.ok.Render(fmt.Sprintf("%s runs through %s", name, lang.JoinPath(exp.Path))))
		return
	}
	r.println(r.styles.no.Render(fmt.Sprintf("%s (written in '%s') cannot reach %s", name, exp.Language, lang.Local)))
	for _, c := range exp.Blocking {
		r.println(r.styles.muted.Render("  waiting on translator " + c.String()))
	}
}

func (r *REPL) display(format string) {
	snap := r.session.Snapshot()
	var err error
	if format == command.FormatDOT {
		err = render.DOT(r.out, snap)
	} else {
		err = render.Text(r.out, snap)
	}
	if err != nil {
		r.fail(err)
	}
}

func (r *REPL) println(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *REPL) fail(err error) {
	r.println(r.styles.err.Render("Error: " + err.Error()))
}
