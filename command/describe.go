package command

import (
	"bytes"
	"os"

	"github.com/frantjc/resman"
	"github.com/frantjc/resman/android"
	"github.com/frantjc/resman/internal/resmanblob"
	"github.com/frantjc/resman/internal/resmanerr"
	"github.com/frantjc/resman/internal/resmanregexp"
	xslice "github.com/frantjc/x/slice"
	"github.com/spf13/cobra"
	"gocloud.dev/blob"
)

func newDescribe() *cobra.Command {
	var (
		output      string
		bloburlstr  string
		apktoolPath string
		keytoolPath string
		framePath   string
		noLibraries bool
		cmd         = &cobra.Command{
			Use:   "describe ROOT|APK",
			Short: "Print everything known about a project's manifest and resources",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var (
					ctx  = cmd.Context()
					log  = resman.LoggerFrom(ctx)
					name = args[0]
				)

				format, err := getOutputFormat(xslice.Coalesce(output, os.Getenv(EnvOutput), "yaml"))
				if err != nil {
					return err
				}

				var report *resman.Report
				if fi, err := os.Stat(name); err == nil && !fi.IsDir() && resmanregexp.IsAPK(name) {
					ad := android.NewAPKDecoder(name,
						android.WithAPKTool(apktoolPath),
						android.WithFrameworkPath(framePath),
						android.WithKeytool(keytoolPath),
						android.WithDescriptorOpts(android.WithLogger(log)),
					)
					defer ad.Close()

					log.Info("decoding " + name)
					if report, err = resman.NewAPKReport(ctx, ad); err != nil {
						return err
					}
				} else {
					var d *android.Descriptor
					if noLibraries {
						d = android.NewDescriptorFromDir(name, android.WithLogger(log))
					} else if d, err = android.NewDescriptorFromProject(name, android.WithLogger(log)); err != nil {
						return resmanerr.WithExitCode(err)
					}

					report = resman.NewReport(ctx, d, android.NewGenDirLocator(name))
				}

				buf := new(bytes.Buffer)
				if err := format.encode(buf, report); err != nil {
					return err
				}

				if bloburlstr = xslice.Coalesce(bloburlstr, os.Getenv(EnvBlobURL)); bloburlstr != "" {
					log.Info("opening bucket " + bloburlstr)
					bucket, err := blob.OpenBucket(ctx, bloburlstr)
					if err != nil {
						return err
					}
					defer bucket.Close()

					key := resmanblob.ReportKey(report.PackageName, report.Hash, format.ext)
					if err := resmanblob.WriteReport(ctx, bucket, key, format.contentType, buf.Bytes()); err != nil {
						return err
					}
				}

				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			},
		}
	)

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format, one of yaml, json or plist (default $"+EnvOutput+" or yaml)")
	cmd.Flags().StringVar(&bloburlstr, "blob", "", "blob URL to also write the report to (default $"+EnvBlobURL+")")
	cmd.Flags().StringVar(&apktoolPath, "apktool", "apktool", "path to apktool, used to decode .apks")
	cmd.Flags().StringVar(&keytoolPath, "keytool", "", "path to keytool, used to report .apks' signing certificate fingerprints")
	cmd.Flags().StringVar(&framePath, "frame-path", "", "directory of apktool framework files")
	cmd.Flags().BoolVar(&noLibraries, "no-libraries", false, "do not resolve library projects' res directories")

	return cmd
}
