package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/theapemachine/qsym"
)

var (
	configPath string
	inputsFlag []float64
	bindFlag   []string
	debug      bool
	asQASM     bool

	config *qsym.Config

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	rootCmd = &cobra.Command{
		Use:           "qsym",
		Short:         "Exact symbolic evaluation of small quantum circuits",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = qsym.LoadConfig(configPath)
			return err
		},
	}

	runCmd = &cobra.Command{
		Use:   "run [circuit.yaml]",
		Short: "Evolve a circuit and print its state or configured readout",
		Args:  cobra.ExactArgs(1),
		RunE:  runCircuit,
	}

	drawCmd = &cobra.Command{
		Use:   "draw [circuit.yaml]",
		Short: "Draw a circuit as text or OpenQASM 2.0",
		Args:  cobra.ExactArgs(1),
		RunE:  drawCircuit,
	}

	paramsCmd = &cobra.Command{
		Use:   "params [circuit.yaml]",
		Short: "List the free parameters of a circuit",
		Args:  cobra.ExactArgs(1),
		RunE:  listParams,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Float64SliceVar(&inputsFlag, "inputs", nil, "Values bound positionally to the circuit inputs")
	runCmd.Flags().StringArrayVar(&bindFlag, "bind", nil, "Bind a parameter, e.g. --bind theta=pi/2")
	runCmd.Flags().BoolVar(&debug, "debug", false, "Dump the parsed circuit and evolution stats")

	rootCmd.AddCommand(drawCmd)
	drawCmd.Flags().BoolVar(&asQASM, "qasm", false, "Print OpenQASM 2.0 instead of a text diagram")

	rootCmd.AddCommand(paramsCmd)
}

func load(path string) (*qsym.CircuitSpec, *qsym.Circuit, error) {
	desc, err := qsym.LoadCircuitFile(path)
	if err != nil {
		return nil, nil, err
	}
	circuit, err := desc.Build(config)
	if err != nil {
		return nil, nil, err
	}
	return desc, circuit, nil
}

func runCircuit(cmd *cobra.Command, args []string) error {
	desc, circuit, err := load(args[0])
	if err != nil {
		return err
	}

	bindings, err := desc.Bindings()
	if err != nil {
		return err
	}
	for _, kv := range bindFlag {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("--bind %q: expected name=value", kv)
		}
		v, err := qsym.Param(raw)
		if err != nil {
			return err
		}
		bindings[strings.TrimSpace(name)] = v
	}

	out := cmd.OutOrStdout()
	mode, bases := circuit.Measurement()

	var values []qsym.Expr
	if len(inputsFlag) > 0 || mode != qsym.MeasureUnset {
		if values, err = circuit.CallWith(bindings, inputsFlag...); err != nil {
			return err
		}
	} else {
		values = circuit.Bind(bindings).Column(0)
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%s (%d qubits)", desc.Name, circuit.NumQubits())))
	switch mode {
	case qsym.MeasureAll:
		for i, v := range values {
			wire, basis := i/len(bases), bases[i%len(bases)]
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render(fmt.Sprintf("<%s_%d>", basis, wire)), v)
		}
	case qsym.MeasureSingle:
		for i, v := range values {
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render(fmt.Sprintf("<%s_0>", bases[i])), v)
		}
	default:
		width := circuit.NumQubits()
		for i, v := range values {
			if qsym.IsZero(v) {
				continue
			}
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render(fmt.Sprintf("|%0*b>", width, i)), v)
		}
	}

	if debug {
		spew.Fdump(out, desc)
		if stats := circuit.Stats(); stats != nil {
			spew.Fdump(out, stats.Export())
		}
	}
	return nil
}

func drawCircuit(cmd *cobra.Command, args []string) error {
	_, circuit, err := load(args[0])
	if err != nil {
		return err
	}
	if asQASM {
		fmt.Fprint(cmd.OutOrStdout(), circuit.Diagram().QASM())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), circuit.Diagram())
	return nil
}

func listParams(cmd *cobra.Command, args []string) error {
	_, circuit, err := load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	inputs := circuit.Inputs()
	if len(inputs) == 0 {
		prefix := circuit.Config().InputPrefix
		for _, name := range circuit.Params() {
			if _, err := strconv.Atoi(strings.TrimPrefix(name, prefix)); err == nil && strings.HasPrefix(name, prefix) {
				inputs = append(inputs, name)
			}
		}
	}

	fmt.Fprintln(out, headerStyle.Render("parameters"))
	for _, name := range circuit.Params() {
		fmt.Fprintln(out, name)
	}
	if len(inputs) > 0 {
		fmt.Fprintln(out, headerStyle.Render("inputs"))
		fmt.Fprintln(out, strings.Join(inputs, "\n"))
	}
	return nil
}
