package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flexkit/flex"
	"flexkit/kspace"
	"flexkit/property"
)

var planFlags struct {
	meshX    int
	meshY    int
	orbitals int
}

var planCmd = &cobra.Command{
	Use:   "plan <config.yaml>",
	Short: "Validate a run configuration and print the resolved plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.IntVar(&planFlags.meshX, "mesh-x", 16, "mesh points along kx")
	f.IntVar(&planFlags.meshY, "mesh-y", 16, "mesh points along ky")
	f.IntVar(&planFlags.orbitals, "orbitals", 1, "orbitals per mesh point")
}

func runPlan(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts, err := flex.LoadConfig(args[0])
	if err != nil {
		return err
	}
	logger.Debug("configuration accepted", zap.String("path", args[0]))

	ctx, err := kspace.NewContext([]int{planFlags.meshX, planFlags.meshY}, planFlags.orbitals)
	if err != nil {
		return err
	}
	if err = ctx.RequireTwoDimensional(); err != nil {
		return err
	}
	layout, err := property.NewPairLayout(ctx)
	if err != nil {
		return err
	}

	couplings := flex.DeriveCouplings(opts.U, opts.J)
	samplesPerSnapshot := layout.NumRows() * opts.FermionicWindow.NumEnergies()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Mesh:              %d×%d, %d orbital(s), %d cells\n",
		planFlags.meshX, planFlags.meshY, planFlags.orbitals, ctx.NumCells())
	fmt.Fprintf(out, "Fermionic window:  [%d, %d] (%d samples)\n",
		opts.FermionicWindow.Lower, opts.FermionicWindow.Upper, opts.FermionicWindow.NumEnergies())
	fmt.Fprintf(out, "Bosonic window:    [%d, %d] (%d samples)\n",
		opts.BosonicWindow.Lower, opts.BosonicWindow.Upper, opts.BosonicWindow.NumEnergies())
	fmt.Fprintf(out, "Couplings:         U=%g J=%g U'=%g J'=%g\n",
		couplings.U, couplings.J, couplings.Uprime, couplings.Jprime)
	fmt.Fprintf(out, "Norm:              %s, tolerance %g\n", opts.Norm, opts.Tolerance)
	fmt.Fprintf(out, "Iteration bound:   %d\n", opts.MaxIterations)
	fmt.Fprintf(out, "Propagator layout: %d pair rows, %d complex samples per snapshot\n",
		layout.NumRows(), samplesPerSnapshot)
	return nil
}
