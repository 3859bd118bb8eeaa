// Command crosslinkctl is a command-line console for the CrossLink demo
// board: register access, color matrix staging, black level inspection
// and bulk gamma LUT uploads over the board's UART.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/KevinBeach/crosslinkdemo-console/link"
	"github.com/KevinBeach/crosslinkdemo-console/memfile"
	"github.com/KevinBeach/crosslinkdemo-console/transfer"
)

var (
	flagPort    string
	flagBaud    int
	flagTimeout time.Duration
	flagDebug   bool

	logger zerolog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crosslinkctl",
		Short:         "Console for the CrossLink image sensor demo board",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if flagDebug {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()
		},
	}

	root.PersistentFlags().StringVarP(&flagPort, "port", "p", "", "serial port of the demo board")
	root.PersistentFlags().IntVarP(&flagBaud, "baud", "b", 115200, "baud rate")
	root.PersistentFlags().DurationVarP(&flagTimeout, "timeout", "t", time.Second, "per-command response timeout")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log every command and response")

	root.AddCommand(
		newPortsCmd(),
		newSendCmd(),
		newRegCmd(),
		newCCMCmd(),
		newXlatCmd(),
		newFpgaCmd(),
		newGammaCmd(),
		newBLCCmd(),
	)
	return root
}

// zlog adapts zerolog to the link.Logger interface.
type zlog struct {
	log zerolog.Logger
}

func (z *zlog) Debug(msg string, kv ...interface{}) { z.log.Debug().Fields(kv).Msg(msg) }
func (z *zlog) Info(msg string, kv ...interface{})  { z.log.Info().Fields(kv).Msg(msg) }
func (z *zlog) Error(msg string, kv ...interface{}) { z.log.Error().Fields(kv).Msg(msg) }

// openLink connects to the board using the global flags.
func openLink() (*link.Link, error) {
	if flagPort == "" {
		return nil, fmt.Errorf("no port selected: pass --port or run 'crosslinkctl ports'")
	}
	return link.Connect(flagPort,
		link.WithBaudRate(flagBaud),
		link.WithTimeout(flagTimeout),
		link.WithLogger(&zlog{log: logger}),
	)
}

// printResponse renders a command's outcome; an empty response is the
// no-answer sentinel, not an error.
func printResponse(resp string) {
	if resp == "" {
		fmt.Println("(no answer)")
		return
	}
	fmt.Println(resp)
}

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports on this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := link.ListPorts()
			if err != nil {
				return err
			}
			if len(ports) == 0 {
				fmt.Println("no serial ports found")
				return nil
			}
			for _, p := range ports {
				fmt.Println(p)
			}
			return nil
		},
	}
}

func newSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <line>",
		Short: "Send a raw console command line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLink()
			if err != nil {
				return err
			}
			defer l.Close()

			resp, err := l.SendCommand(args[0])
			if err != nil {
				return err
			}
			printResponse(resp)
			return nil
		},
	}
}

func newRegCmd() *cobra.Command {
	reg := &cobra.Command{
		Use:   "reg",
		Short: "Raw image sensor registers",
	}
	reg.AddCommand(
		&cobra.Command{
			Use:   "read <addr>",
			Short: "Read a sensor register",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withLink(func(l *link.Link) (string, error) { return l.ReadSensorReg(args[0]) })
			},
		},
		&cobra.Command{
			Use:   "write <addr> <value>",
			Short: "Write a sensor register (hex value)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withLink(func(l *link.Link) (string, error) { return l.WriteSensorReg(args[0], args[1]) })
			},
		},
	)
	return reg
}

func newCCMCmd() *cobra.Command {
	ccm := &cobra.Command{
		Use:   "ccm",
		Short: "Color correction matrix coefficients",
	}
	ccm.AddCommand(
		&cobra.Command{
			Use:   "read <addr>",
			Short: "Read a CCM coefficient",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withLink(func(l *link.Link) (string, error) { return l.ReadCCM(args[0]) })
			},
		},
		&cobra.Command{
			Use:   "write <addr> <value>",
			Short: "Write a CCM coefficient (signed, -99..99)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withLink(func(l *link.Link) (string, error) { return l.WriteCCM(args[0], args[1]) })
			},
		},
		&cobra.Command{
			Use:   "upload",
			Short: "Commit the staged CCM and translation matrices",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withLink(func(l *link.Link) (string, error) { return l.UploadCCM() })
			},
		},
	)
	return ccm
}

func newXlatCmd() *cobra.Command {
	xlat := &cobra.Command{
		Use:   "xlat",
		Short: "Translation (offset) vector coefficients",
	}
	xlat.AddCommand(
		&cobra.Command{
			Use:   "read <addr>",
			Short: "Read a translation coefficient",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withLink(func(l *link.Link) (string, error) { return l.ReadTranslation(args[0]) })
			},
		},
		&cobra.Command{
			Use:   "write <addr> <value>",
			Short: "Write a translation coefficient (signed, -255..255)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withLink(func(l *link.Link) (string, error) { return l.WriteTranslation(args[0], args[1]) })
			},
		},
	)
	return xlat
}

func newFpgaCmd() *cobra.Command {
	fpga := &cobra.Command{
		Use:   "fpga",
		Short: "FPGA-mapped register space",
	}
	fpga.AddCommand(
		&cobra.Command{
			Use:   "read <addr> <sub>",
			Short: "Read an FPGA register",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withLink(func(l *link.Link) (string, error) { return l.ReadFpga(args[0], args[1]) })
			},
		},
		&cobra.Command{
			Use:   "write <addr> <sub> <data>",
			Short: "Write an FPGA register",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withLink(func(l *link.Link) (string, error) { return l.WriteFpga(args[0], args[1], args[2]) })
			},
		},
	)
	return fpga
}

func newGammaCmd() *cobra.Command {
	gamma := &cobra.Command{
		Use:   "gamma",
		Short: "Gamma LUT upload and presets",
	}
	gamma.AddCommand(
		&cobra.Command{
			Use:   "upload <file.mem>",
			Short: "Upload a 128-word gamma LUT to the FPGA",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				img, err := memfile.Load(args[0])
				if err != nil {
					return err
				}
				logger.Info().
					Str("file", args[0]).
					Str("checksum", fmt.Sprintf("0x%04X", img.Checksum())).
					Msg("gamma image loaded")

				l, err := openLink()
				if err != nil {
					return err
				}
				defer l.Close()

				eng := transfer.New(l, transfer.WithLogger(&zlog{log: logger}))
				events, err := eng.Start(cmd.Context(), img)
				if err != nil {
					return err
				}

				for ev := range events {
					switch ev.Kind {
					case transfer.EventSending:
						fmt.Printf("\rwriting %d / %d", ev.Index+1, memfile.WordCount)
					case transfer.EventCompleted:
						fmt.Printf("\rgamma load complete (%d entries)\n", ev.Count)
					case transfer.EventFailed:
						fmt.Println()
						return ev.Err
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "preset <index>",
			Short: "Activate a built-in preset gamma curve (hex index)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withLink(func(l *link.Link) (string, error) { return l.SelectPresetGamma(args[0]) })
			},
		},
		&cobra.Command{
			Use:   "status [value]",
			Short: "Read or write the gamma status word",
			Args:  cobra.RangeArgs(0, 1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if len(args) == 0 {
					return withLink(func(l *link.Link) (string, error) { return l.ReadStatusWord() })
				}
				return withLink(func(l *link.Link) (string, error) { return l.WriteStatusWord(args[0]) })
			},
		},
	)
	return gamma
}

func newBLCCmd() *cobra.Command {
	blc := &cobra.Command{
		Use:   "blc",
		Short: "Black level correction",
	}
	blc.AddCommand(
		&cobra.Command{
			Use:   "read",
			Short: "Read all four channel black levels with their ratios",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				l, err := openLink()
				if err != nil {
					return err
				}
				defer l.Close()

				for _, ch := range []link.BLCChannel{link.BLCRed, link.BLCGreen1, link.BLCGreen2, link.BLCBlue} {
					word, err := l.ReadBlackLevel(ch)
					if err != nil {
						return err
					}
					if word == "" {
						fmt.Printf("%-3s (no answer)\n", ch)
						continue
					}
					ratio, err := link.BlackLevelRatio(word)
					if err != nil {
						return err
					}
					fmt.Printf("%-3s %s  %.6f\n", ch, word, ratio)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "offset <channel> <value>",
			Short: "Write one channel's correction offset (R, G1, G2 or B)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ch, err := parseChannel(args[0])
				if err != nil {
					return err
				}
				return withLink(func(l *link.Link) (string, error) { return l.WriteBlackLevelOffset(ch, args[1]) })
			},
		},
		&cobra.Command{
			Use:   "clamp",
			Short: "Read the sensor black level clamp bytes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				l, err := openLink()
				if err != nil {
					return err
				}
				defer l.Close()

				msb, err := l.ReadClampMSB()
				if err != nil {
					return err
				}
				lsb, err := l.ReadClampLSB()
				if err != nil {
					return err
				}
				fmt.Printf("MSB %s  LSB %s\n", orUnset(msb), orUnset(lsb))
				return nil
			},
		},
	)
	return blc
}

// withLink runs one operation over a fresh connection and prints its
// response.
func withLink(op func(*link.Link) (string, error)) error {
	l, err := openLink()
	if err != nil {
		return err
	}
	defer l.Close()

	resp, err := op(l)
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}

func parseChannel(s string) (link.BLCChannel, error) {
	switch s {
	case "R", "r":
		return link.BLCRed, nil
	case "G1", "g1":
		return link.BLCGreen1, nil
	case "G2", "g2":
		return link.BLCGreen2, nil
	case "B", "b":
		return link.BLCBlue, nil
	}
	return 0, fmt.Errorf("unknown channel %q: use R, G1, G2 or B", s)
}

func orUnset(s string) string {
	if s == "" {
		return "(no answer)"
	}
	return s
}
