package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	"golang.org/x/sys/cpu"

	"github.com/agbru/dhcalc/internal/bigint"
	"github.com/agbru/dhcalc/internal/ui"
)

// CPUFeatures lists the instruction set extensions that speed up multi-limb
// multiplication, as detected at startup. Both engines use them through
// their assembly kernels.
func CPUFeatures() []string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasBMI2, "bmi2")
		add(cpu.X86.HasADX, "adx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasPMULL, "pmull")
		add(cpu.ARM64.HasSVE, "sve")
	}
	return features
}

// DisplayEngines prints every engine in priority order with its
// availability, followed by the detected CPU features.
func DisplayEngines(out io.Writer, infos []bigint.EngineInfo) {
	fmt.Fprintf(out, "--- Engines ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  #\tEngine\tStatus\tDescription\n")
	for _, info := range infos {
		status := fmt.Sprintf("%savailable%s", ui.ColorGreen(), ui.ColorReset())
		if !info.Available {
			status = fmt.Sprintf("%sunavailable%s", ui.ColorRed(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %d\t%s%s%s\t%s\t%s\n", info.Priority, ui.ColorCyan(), info.Name, ui.ColorReset(), status, info.Description)
		if info.Reason != "" {
			fmt.Fprintf(tw, "  \t\t\t%s%s%s\n", ui.ColorGrey(), info.Reason, ui.ColorReset())
		}
	}
	tw.Flush()

	features := CPUFeatures()
	if len(features) == 0 {
		features = []string{"none detected"}
	}
	fmt.Fprintf(out, "CPU: %s/%s, features: %s\n", runtime.GOOS, runtime.GOARCH, strings.Join(features, " "))
}
