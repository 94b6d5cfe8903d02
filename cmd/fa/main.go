package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/npillmayer/schuko/tracing"

	"automata/internal/fa"
	"automata/internal/wordlist"
)

// dotCommand renders DOT input for -png.
var dotCommand = "dot"

type options struct {
	expr     string
	alphabet string
	order    string
	words    string
	dot      string
	out      string
	png      bool
	table    bool
	nfa      bool
	verbose  bool
}

func main() {
	var opt options
	flag.StringVar(&opt.expr, "expr", "", "postfix expression, e.g. 'ab|*c.' (required)")
	flag.StringVar(&opt.alphabet, "alphabet", "", "alphabet symbols (default: symbols of the expression)")
	flag.StringVar(&opt.order, "order", "lifo", "subset construction work-list: lifo|fifo")
	flag.StringVar(&opt.words, "words", "", "word list to classify ('-' for stdin)")
	flag.StringVar(&opt.dot, "dot", "", "export Graphviz DOT of the nfa or the dfa")
	flag.StringVar(&opt.out, "o", "-", "output file for -dot")
	flag.BoolVar(&opt.png, "png", false, "render -dot output as PNG via dot -Tpng (needs -o file)")
	flag.BoolVar(&opt.table, "table", false, "print the DFA transition table")
	flag.BoolVar(&opt.nfa, "nfa", false, "print the Thompson NFA")
	flag.BoolVar(&opt.verbose, "v", false, "trace at debug level")
	flag.Parse()

	if opt.expr == "" {
		fmt.Fprintln(os.Stderr, "usage: fa -expr <postfix> [-alphabet abc] [-order lifo|fifo] [-words file] [-dot nfa|dfa] [-o file] [-png] [-table] [-nfa]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := run(opt, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(opt options, stdin io.Reader, stdout io.Writer) error {
	level := tracing.LevelError
	if opt.verbose {
		level = tracing.LevelDebug
	}
	for _, key := range []string{"automata.fa", "automata.postfix", "automata.wordlist"} {
		tracing.Select(key).SetTraceLevel(level)
	}

	order, err := fa.ParseOrder(opt.order)
	if err != nil {
		return err
	}
	nfa, err := fa.Compile(opt.expr)
	if err != nil {
		return err
	}
	alphabet := nfa.Alphabet()
	if opt.alphabet != "" {
		alphabet = []rune(opt.alphabet)
	}
	dfa, err := fa.Determinize(nfa, alphabet, fa.WithOrder(order))
	if err != nil {
		return err
	}

	if opt.nfa {
		if err := fa.WriteNFA(stdout, nfa); err != nil {
			return err
		}
	}
	if opt.table {
		if err := fa.WriteTable(stdout, dfa); err != nil {
			return err
		}
	}
	if opt.png && opt.dot == "" {
		return fmt.Errorf("-png needs -dot nfa|dfa")
	}
	if opt.dot != "" {
		if err := exportDOT(opt, nfa, dfa, stdout); err != nil {
			return err
		}
	}
	if opt.words != "" {
		return classify(opt.words, dfa, stdin, stdout)
	}
	return nil
}

func exportDOT(opt options, nfa *fa.NFA, dfa *fa.DFA, stdout io.Writer) error {
	var buf bytes.Buffer
	var err error
	switch opt.dot {
	case "nfa":
		err = fa.ExportDOT(&buf, nfa)
	case "dfa":
		err = fa.ExportDOT(&buf, dfa)
	default:
		return fmt.Errorf("-dot: want nfa or dfa, have %q", opt.dot)
	}
	if err != nil {
		return err
	}
	if opt.png {
		return renderPNG(opt.out, &buf, stdout)
	}
	if opt.out == "-" {
		_, err = io.Copy(stdout, &buf)
		return err
	}
	if err := os.WriteFile(opt.out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", opt.out, err)
	}
	fmt.Fprintf(stdout, "DOT written to %s\n", opt.out)
	return nil
}

func renderPNG(out string, dot io.Reader, stdout io.Writer) error {
	if out == "-" {
		return fmt.Errorf("-png needs an output file, use -o")
	}
	cmd := exec.Command(dotCommand, "-Tpng", "-o", out)
	cmd.Stdin = dot
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", dotCommand, err)
	}
	fmt.Fprintf(stdout, "PNG written to %s\n", out)
	return nil
}

func classify(path string, dfa *fa.DFA, stdin io.Reader, stdout io.Writer) error {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	words, err := wordlist.ReadAll(r)
	if err != nil {
		return err
	}
	for _, w := range words {
		verdict := "reject"
		if dfa.Accepts(w.Text) {
			verdict = "accept"
		}
		fmt.Fprintf(stdout, "%s %q\n", verdict, w.Text)
	}
	return nil
}
