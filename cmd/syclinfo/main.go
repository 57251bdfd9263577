// Copyright 2025 go-sycl Authors
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

// Command syclinfo lists the devices kernels can run on and runs a
// self-checking nd-range launch on them.
//
// Usage:
//
//	syclinfo devices
//	syclinfo run --global 64,64 --local 8,8 --schedule dynamic
//	syclinfo run --global 1000 --local 10 --sequential -v
//
// The run subcommand fills a buffer with the linear offset of every global
// coordinate and verifies that each element was written exactly once.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sycl/sycl"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "syclinfo",
		Short:         "Inspect devices and exercise the host SYCL executor",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				sycl.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log launches and device selection to stderr")
	root.AddCommand(newDevicesCmd(), newRunCmd())
	return root
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List devices and the score every built-in selector gives them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			devs := sycl.Devices()
			for i, d := range devs {
				fmt.Fprintf(out, "[%d] %s\n", i, d)
			}
			fmt.Fprintln(out)
			for _, s := range builtinSelectors {
				scores := make([]int, len(devs))
				for i, d := range devs {
					scores[i] = s.sel(d)
				}
				chosen, err := sycl.SelectFrom(devs, s.sel)
				if err != nil {
					fmt.Fprintf(out, "%-8s scores=%v -> %v\n", s.name, scores, err)
					continue
				}
				fmt.Fprintf(out, "%-8s scores=%v -> %s\n", s.name, scores, chosen.Name)
			}
			return nil
		},
	}
}

var builtinSelectors = []struct {
	name string
	sel  sycl.Selector
}{
	{"default", sycl.DefaultSelector()},
	{"gpu", sycl.GPUSelector()},
	{"cpu", sycl.CPUSelector()},
	{"host", sycl.HostSelector()},
}
