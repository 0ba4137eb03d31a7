package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/notnil/canmsg"
	"github.com/spf13/cobra"
)

const (
	formatBinary = "binary"
	formatCBOR   = "cbor"
)

func newEncodeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "encode <id-hex> [data-hex]",
		Short: "Encode a message as SocketCAN binary or CBOR hex",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			extended, _ := cmd.Flags().GetBool(flagExtended)
			format, _ := cmd.Flags().GetString(flagFormat)
			m, err := messageFromArgs(args, extended)
			if err != nil {
				return err
			}
			var out []byte
			switch format {
			case formatBinary:
				out, err = m.MarshalBinary()
			case formatCBOR:
				out, err = m.MarshalCBOR()
			default:
				return fmt.Errorf("canmsg: unknown format %q", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
			return nil
		},
	}
	c.Flags().BoolP(flagExtended, "e", false, "use an extended (29-bit) identifier")
	c.Flags().StringP(flagFormat, "f", formatBinary, "binary|cbor")
	return c
}

func newDecodeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a SocketCAN binary or CBOR message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString(flagFormat)
			raw, err := hex.DecodeString(strings.ReplaceAll(args[0], " ", ""))
			if err != nil {
				return fmt.Errorf("canmsg: parse hex: %w", err)
			}
			var m canmsg.Message
			switch format {
			case formatBinary:
				err = m.UnmarshalBinary(raw)
			case formatCBOR:
				err = m.UnmarshalCBOR(raw)
			default:
				return fmt.Errorf("canmsg: unknown format %q", format)
			}
			if err != nil {
				logger(cmd.Context()).Debug("decode failed", "format", format, "error", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.String())
			return nil
		},
	}
	c.Flags().StringP(flagFormat, "f", formatBinary, "binary|cbor")
	return c
}
