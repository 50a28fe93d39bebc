package main

import (
	"fmt"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/convkit"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"

	"oxcart/port/ds"
	"oxcart/port/ds/dslist"
	"oxcart/port/ds/dspq"
	"oxcart/port/ds/dssort"
)

const (
	ErrInvalidNumber  errorkit.Error = "ErrInvalidNumber"
	ErrUnknownBackend errorkit.Error = "ErrUnknownBackend"
)

const EnvBackend = "OXCART_BACKEND"

type SortCommand struct {
	Backend string `flag:"backend" env:"OXCART_BACKEND" enum:"array,linked," desc:"list backing store, array by default"`
	Desc    bool   `flag:"desc" desc:"sort in descending order"`

	log *logging.Logger
}

func (cmd SortCommand) Summary() string { return "bubble sort the given integers" }

func (cmd SortCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	ctx := r.Context()
	vs, err := parseNumbers(r.Args)
	if err != nil {
		handleError(w, err)
		return
	}
	list, err := cmd.newList()
	if err != nil {
		handleError(w, err)
		return
	}
	list.Append(vs...)

	lessOrEqual := func(a, b int) bool { return a <= b }
	if cmd.Desc {
		lessOrEqual = func(a, b int) bool { return a >= b }
	}

	cmd.log.Debug(ctx, "sorting",
		logging.Field("backend", cmd.backend()),
		logging.Field("length", list.Len()))

	if err := dssort.Bubble(list, lessOrEqual); err != nil {
		cmd.log.Error(ctx, "sort failed", logging.ErrField(err))
		handleError(w, err)
		return
	}
	printNumbers(w, list)
}

func (cmd SortCommand) backend() string {
	return zerokit.Coalesce(cmd.Backend, "array")
}

func (cmd SortCommand) newList() (ds.List[int], error) {
	switch b := cmd.backend(); b {
	case "array":
		return &dslist.ArrayList[int]{}, nil
	case "linked":
		return &dslist.LinkedList[int]{}, nil
	default:
		return nil, ErrUnknownBackend.F("%q is not a list backend (array, linked)", b)
	}
}

type TopCommand struct {
	N int `flag:"n" default:"1" desc:"number of the greatest values to print"`

	log *logging.Logger
}

func (cmd TopCommand) Summary() string { return "print the greatest integers in descending order" }

func (cmd TopCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	ctx := r.Context()
	if cmd.N < 0 {
		handleError(w, ErrInvalidNumber.F("-n must not be negative: %d", cmd.N))
		return
	}
	vs, err := parseNumbers(r.Args)
	if err != nil {
		handleError(w, err)
		return
	}

	pq := dspq.New[int](dspq.Capacity(len(vs)))
	for _, v := range vs {
		if _, err := pq.Push(v); err != nil {
			handleError(w, err)
			return
		}
	}
	cmd.log.Debug(ctx, "queue is ready", logging.Field("length", pq.Len()))

	out := dslist.NewArrayList[int](dslist.Capacity(cmd.N))
	for out.Len() < cmd.N && 0 < pq.Len() {
		v, err := pq.Pop()
		if err != nil {
			cmd.log.Error(ctx, "pop failed", logging.ErrField(err))
			handleError(w, err)
			return
		}
		out.Append(v)
	}
	printNumbers(w, out)
}

func parseNumbers(args []string) ([]int, error) {
	vs := make([]int, 0, len(args))
	for _, raw := range args {
		v, err := convkit.Parse[int](raw)
		if err != nil {
			return nil, ErrInvalidNumber.F("%q is not an integer", raw)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func handleError(w cli.ResponseWriter, err error) {
	fmt.Fprintln(w, err.Error())
	w.ExitCode(cli.ExitCodeError)
}

func printNumbers(w cli.ResponseWriter, vs ds.Values[int]) {
	var parts []string
	for v := range vs.Values() {
		parts = append(parts, fmt.Sprint(v))
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}
