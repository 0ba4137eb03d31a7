package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/canmsg"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "build <id-hex> [data-hex]",
		Short: "Build and validate a message",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			extended, _ := cmd.Flags().GetBool(flagExtended)
			m, err := messageFromArgs(args, extended)
			if err != nil {
				return err
			}
			logger(cmd.Context()).Debug("built message", "id", m.ID().String(), "len", m.Len())
			if useColor, _ := cmd.Flags().GetBool(flagColor); useColor {
				fmt.Fprintln(cmd.OutOrStdout(), m.ColorString())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.String())
			return nil
		},
	}
	c.Flags().BoolP(flagExtended, "e", false, "use an extended (29-bit) identifier")
	c.Flags().Bool(flagColor, false, "colorize output")
	return c
}

// messageFromArgs parses "<id-hex> [data-hex]". The id may carry a 0x
// prefix; data may contain spaces.
func messageFromArgs(args []string, extended bool) (canmsg.Message, error) {
	bits := 16
	if extended {
		bits = 32
	}
	raw, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(args[0]), "0x"), 16, bits)
	if err != nil {
		return canmsg.Message{}, fmt.Errorf("canmsg: parse id %q: %w", args[0], err)
	}
	var data []byte
	if len(args) > 1 {
		data, err = hex.DecodeString(strings.ReplaceAll(args[1], " ", ""))
		if err != nil {
			return canmsg.Message{}, fmt.Errorf("canmsg: parse data %q: %w", args[1], err)
		}
	}
	if extended {
		return canmsg.WithExtendedID(uint32(raw), data)
	}
	return canmsg.WithShortID(uint16(raw), data)
}
