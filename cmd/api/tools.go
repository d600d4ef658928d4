package main

import (
	"encoding/json"
	"fmt"
	"os"

	"pix_checkout/internal/domain/pixcode"
	"pix_checkout/internal/infrastructure/qrcode"

	"github.com/spf13/cobra"
)

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [response.json]",
		Short: "Run the Pix code extraction over a saved gateway response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			obj, err := pixcode.PixObject(raw)
			if err != nil {
				return fmt.Errorf("read pix object: %w", err)
			}
			res, ok := pixcode.Extract(obj)
			if !ok {
				return fmt.Errorf("no pix code found in %s", args[0])
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"strategy":     res.Strategy,
				"qrcode":       res.QRCode,
				"copyAndPaste": res.CopyAndPaste,
				"validCRC":     pixcode.ValidCRC(res.QRCode),
			})
		},
	}
}

func qrcodeCmd() *cobra.Command {
	var (
		output string
		size   int
	)

	cmd := &cobra.Command{
		Use:   "qrcode [code]",
		Short: "Render a Pix code as a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := qrcode.NewRenderer()
			r.Size = size
			png, err := r.PNG(args[0])
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, png, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", output, len(png))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "qrcode.png", "output file")
	cmd.Flags().IntVarP(&size, "size", "s", qrcode.DefaultSize, "image size in pixels")

	return cmd
}
