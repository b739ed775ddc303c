// This file is part of Patch2600.
//
// Patch2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Patch2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Patch2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/patch2600/curated"
	"github.com/jetsetilly/patch2600/logger"
	"github.com/jetsetilly/patch2600/modalflag"
	"github.com/jetsetilly/patch2600/patch"
	"github.com/jetsetilly/patch2600/patch/bps"
	"github.com/jetsetilly/patch2600/patch/ips"
	"github.com/jetsetilly/patch2600/patch/ups"
	"github.com/jetsetilly/patch2600/performance"
	"github.com/jetsetilly/patch2600/regression"
	"github.com/jetsetilly/patch2600/romloader"
	"github.com/jetsetilly/patch2600/statsview"
	"github.com/jetsetilly/patch2600/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("BUILD", "APPLY", "INFO", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "BUILD":
		err = build(md)

	case "APPLY":
		err = apply(md)

	case "INFO":
		err = info(md)

	case "REGRESS":
		err = regress(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func build(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	profile := md.AddString("profile", "none", "run through the performance profiler: comma separated CPU, MEM or ALL")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! statsview not included in this build")
		}
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 3:
		original := romloader.NewLoader(md.GetArg(0))
		if err := original.Load(); err != nil {
			return err
		}

		modified := romloader.NewLoader(md.GetArg(1))
		if err := modified.Load(); err != nil {
			return err
		}

		var pt *ups.Patch

		buildRun := func() error {
			var err error
			pt, err = ups.Build(original.Data, modified.Data)
			return err
		}

		err = performance.RunProfiler(prf, "build", buildRun)
		if err != nil {
			return err
		}

		err = romloader.Save(md.GetArg(2), pt.Serialise())
		if err != nil {
			return err
		}

		fmt.Printf("%s -> %s: %d blocks (crc32 %08x -> %08x)\n",
			original.ShortName(), modified.ShortName(),
			pt.NumBlocks(), pt.CRCInput, pt.CRCOutput)

	default:
		return fmt.Errorf("build mode requires three arguments: original, modified and patch filename")
	}

	return nil
}

func apply(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	force := md.AddBool("force", false, "write output even if it fails verification")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 3:
		rom := romloader.NewLoader(md.GetArg(0))
		if err := rom.Load(); err != nil {
			return err
		}

		ptc := romloader.NewLoader(md.GetArg(1))
		if err := ptc.Load(); err != nil {
			return err
		}

		app, err := patch.NewApplier(ptc.Data)
		if err != nil {
			return err
		}

		output, err := app.Apply(rom.Data)
		if err != nil {
			// a verification failure still produces output. the force flag
			// allows the user to keep it
			if !(*force && curated.Has(err, ups.OutputVerificationFailed)) {
				return err
			}
			fmt.Printf("! %s\n", err)
			fmt.Println("! keeping output anyway (-force)")
		}

		err = romloader.Save(md.GetArg(2), output)
		if err != nil {
			return err
		}

		fmt.Printf("%s patched (%d bytes -> %d bytes)\n", rom.ShortName(), len(rom.Data), len(output))

	default:
		return fmt.Errorf("apply mode requires three arguments: rom, patch and output filename")
	}

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	viz := md.AddString("viz", "", "write graphviz visualisation of the parsed patch to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 1:
		ptc := romloader.NewLoader(md.GetArg(0))
		if err := ptc.Load(); err != nil {
			return err
		}

		// the parsed patch. stored as any so that any of the supported
		// formats can be passed to memviz
		var parsed any

		switch patch.Fingerprint(ptc.Data) {
		case patch.FormatUPS:
			pt, err := ups.Parse(ptc.Data)
			if err != nil {
				return err
			}
			parsed = pt

			fmt.Printf("%s: UPS patch\n", ptc.ShortName())
			fmt.Printf("  input:  %d bytes (crc32 %08x)\n", pt.InputSize, pt.CRCInput)
			fmt.Printf("  output: %d bytes (crc32 %08x)\n", pt.OutputSize, pt.CRCOutput)
			fmt.Printf("  blocks: %d\n", pt.NumBlocks())

		case patch.FormatIPS:
			pt, err := ips.Parse(ptc.Data)
			if err != nil {
				return err
			}
			parsed = pt

			fmt.Printf("%s: IPS patch\n", ptc.ShortName())
			fmt.Printf("  records: %d\n", pt.NumRecords())

		case patch.FormatBPS:
			pt, err := bps.Parse(ptc.Data)
			if err != nil {
				return err
			}
			parsed = pt

			fmt.Printf("%s: BPS patch\n", ptc.ShortName())
			fmt.Printf("  source: %d bytes (crc32 %08x)\n", pt.SourceSize, pt.CRCSource)
			fmt.Printf("  target: %d bytes (crc32 %08x)\n", pt.TargetSize, pt.CRCTarget)
			if len(pt.Metadata()) > 0 {
				fmt.Printf("  metadata: %s\n", string(pt.Metadata()))
			}

		default:
			return curated.Errorf(patch.UnrecognisedFormat)
		}

		if *viz != "" {
			f, err := os.Create(*viz)
			if err != nil {
				return err
			}
			defer f.Close()
			memviz.Map(f, parsed)
		}

	default:
		return fmt.Errorf("info mode requires a patch file")
	}

	return nil
}

// yesReader always answers yes to any confirmation request.
type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		err = regression.RegressRun(md.Output, *verbose, md.RemainingArgs())
		if err != nil {
			return err
		}

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			err := regression.RegressList(md.Output)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			err := regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		md.NewMode()

		notes := md.AddString("notes", "", "additional annotation for the database")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 2:
			reg := &regression.PatchRegression{
				RomFile:   md.GetArg(0),
				PatchFile: md.GetArg(1),
				Notes:     *notes,
			}

			err := regression.RegressAdd(md.Output, reg)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("add mode requires two arguments: rom and patch filename")
		}
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	vrs := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vers, rev, rel := version.Version()
	fmt.Printf("%s (%s)\n", version.ApplicationName, vers)
	if *vrs && !rel {
		fmt.Println(rev)
	}

	return nil
}
