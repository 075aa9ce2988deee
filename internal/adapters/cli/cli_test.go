package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/gradestats/internal/adapters/cli"
	service "github.com/okian/gradestats/internal/app"
	"github.com/okian/gradestats/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func newSession() *service.Service { return service.New() }

// run executes the command tree with args and stdin, returning stdout and
// the command error.
func run(stdin string, args ...string) (string, error) {
	cfg := config.New(context.Background())
	root := cli.NewRootCmd(cfg, newSession)
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMenu(t *testing.T) {
	Convey("Given the interactive menu", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		svc := service.New()
		var out bytes.Buffer

		runMenu := func(input string) error {
			return cli.NewMenu(svc, strings.NewReader(input), &out, filepath.Join(dir, "notas.txt")).Run(ctx)
		}

		Convey("When adding scores and asking for statistics", func() {
			err := runMenu("1\n8\n5.5\n9\n5.5\ns\n3\n7\n")

			Convey("Then each score is confirmed and the statistics are printed", func() {
				So(err, ShouldBeNil)
				text := out.String()
				So(text, ShouldContainSubstring, "Score 8.00 added. Total: 1")
				So(text, ShouldContainSubstring, "Score 5.50 added. Total: 4")
				So(text, ShouldContainSubstring, "Mean: 7.00")
				So(text, ShouldContainSubstring, "Highest score: 9.00")
				So(text, ShouldContainSubstring, "Lowest score: 5.50")
				So(text, ShouldContainSubstring, "Standard deviation: 1.54")
				So(text, ShouldEndWith, "Goodbye!\n")
				So(svc.Count(), ShouldEqual, 4)
			})
		})

		Convey("When entering invalid and out-of-range scores", func() {
			err := runMenu("1\nabc\n7.5x\n11\n-1\n7\nS\n2\n7\n")

			Convey("Then distinct messages are printed and only the valid score is kept", func() {
				So(err, ShouldBeNil)
				text := out.String()
				So(strings.Count(text, "Invalid input. Enter a number or 's' to stop."), ShouldEqual, 2)
				So(strings.Count(text, "Invalid score. Must be between 0.0 and 10.0."), ShouldEqual, 2)
				So(text, ShouldContainSubstring, "Scores (total 1):")
				So(text, ShouldContainSubstring, "  1: 7.00")
				So(svc.Count(), ShouldEqual, 1)
			})
		})

		Convey("When asking for statistics or sorting with no scores", func() {
			err := runMenu("3\n4\n2\n7\n")

			Convey("Then the empty session is reported", func() {
				So(err, ShouldBeNil)
				text := out.String()
				So(strings.Count(text, "No scores recorded."), ShouldEqual, 2)
				So(text, ShouldContainSubstring, "No scores to sort.")
				So(text, ShouldNotContainSubstring, "Mean:")
			})
		})

		Convey("When sorting and listing", func() {
			err := runMenu("1\n8\n5.5\n9\n5.5\ns\n4\n2\n7\n")

			Convey("Then the list is in ascending order", func() {
				So(err, ShouldBeNil)
				text := out.String()
				So(text, ShouldContainSubstring, "Scores sorted in ascending order.")
				So(text, ShouldContainSubstring, "  1: 5.50\n  2: 5.50\n  3: 8.00\n  4: 9.00\n")
			})
		})

		Convey("When saving with the default name and loading it back", func() {
			err := runMenu("1\n7.5\n3.25\ns\n5\n\n1\n1\ns\n6\n\n7\n")

			Convey("Then the file is written and reloaded in full", func() {
				So(err, ShouldBeNil)
				text := out.String()
				So(text, ShouldContainSubstring, "Saved to '"+filepath.Join(dir, "notas.txt")+"'.")
				So(text, ShouldContainSubstring, "Total scores: 2")
				data, readErr := os.ReadFile(filepath.Join(dir, "notas.txt"))
				So(readErr, ShouldBeNil)
				So(string(data), ShouldEqual, "7.5\n3.25\n")
				So(svc.Scores(), ShouldResemble, []float64{7.5, 3.25})
			})
		})

		Convey("When loading a missing file", func() {
			missing := filepath.Join(dir, "missing.txt")
			err := runMenu("1\n4\ns\n6\n" + missing + "\n7\n")

			Convey("Then a file error is printed and the scores are kept", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldContainSubstring, "Error loading file: file error:")
				So(svc.Scores(), ShouldResemble, []float64{4})
			})
		})

		Convey("When choosing an unknown option", func() {
			err := runMenu("9\nx\n7\n")

			Convey("Then the user is asked again", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldContainSubstring, "Invalid option. Try again.")
				So(out.String(), ShouldContainSubstring, "Invalid input. Try again.")
			})
		})

		Convey("When a pasted line is longer than 64 KiB", func() {
			err := runMenu("1\n5\n" + strings.Repeat("x", 70000) + "\ns\n2\n7\n")

			Convey("Then it is rejected as input and the session continues", func() {
				So(err, ShouldBeNil)
				text := out.String()
				So(strings.Count(text, "Invalid input. Enter a number or 's' to stop."), ShouldEqual, 1)
				So(text, ShouldContainSubstring, "  1: 5.00")
				So(text, ShouldEndWith, "Goodbye!\n")
				So(svc.Scores(), ShouldResemble, []float64{5})
			})
		})

		Convey("When entering numbers in non-decimal notations", func() {
			err := runMenu("1\n1_0\n0x1p-2\n6\ns\n7\n")

			Convey("Then they are rejected as input", func() {
				So(err, ShouldBeNil)
				So(strings.Count(out.String(), "Invalid input. Enter a number or 's' to stop."), ShouldEqual, 2)
				So(svc.Scores(), ShouldResemble, []float64{6})
			})
		})

		Convey("When input ends without quitting", func() {
			err := runMenu("1\n6\n")

			Convey("Then the session ends cleanly", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldEndWith, "Goodbye!\n")
				So(svc.Count(), ShouldEqual, 1)
			})
		})
	})
}

func TestCommands(t *testing.T) {
	Convey("Given a score file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "notas.txt")
		So(os.WriteFile(path, []byte("8\n5.5\nabc\n9\n15\n5.5\n"), 0o600), ShouldBeNil)

		Convey("When running stats", func() {
			out, err := run("", "stats", path)

			Convey("Then the statistics of the valid lines are printed", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "Mean: 7.00")
				So(out, ShouldContainSubstring, "Standard deviation: 1.54")
			})
		})

		Convey("When running show --sorted", func() {
			out, err := run("", "show", "--sorted", path)

			Convey("Then the scores are listed ascending and the file is untouched", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "  1: 5.50\n  2: 5.50\n  3: 8.00\n  4: 9.00\n")
				data, _ := os.ReadFile(path)
				So(string(data), ShouldStartWith, "8\n")
			})
		})

		Convey("When running sort", func() {
			out, err := run("", "sort", path)

			Convey("Then the file is rewritten in ascending order", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "Sorted 4 scores")
				data, _ := os.ReadFile(path)
				So(string(data), ShouldEqual, "5.5\n5.5\n8\n9\n")
			})
		})

		Convey("When running add with valid scores", func() {
			out, err := run("", "add", path, "10", "0.5")

			Convey("Then they are appended", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "Added 2 scores")
				data, _ := os.ReadFile(path)
				So(string(data), ShouldEqual, "8\n5.5\n9\n5.5\n10\n0.5\n")
			})
		})

		Convey("When running add with an out-of-range score", func() {
			before, _ := os.ReadFile(path)
			_, err := run("", "add", path, "7", "12")

			Convey("Then a validation error is returned and the file is untouched", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "invalid score")
				after, _ := os.ReadFile(path)
				So(string(after), ShouldEqual, string(before))
			})
		})

		Convey("When running add with garbage", func() {
			_, err := run("", "add", path, "seven")

			Convey("Then an input error is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "not a number")
			})
		})

		Convey("When running add with an underscore-separated number", func() {
			before, _ := os.ReadFile(path)
			_, err := run("", "add", path, "1_0")

			Convey("Then an input error is returned and the file is untouched", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "not a number")
				after, _ := os.ReadFile(path)
				So(string(after), ShouldEqual, string(before))
			})
		})

		Convey("When running add on a new file", func() {
			fresh := filepath.Join(dir, "new.txt")
			_, err := run("", "add", fresh, "6")

			Convey("Then the file is created", func() {
				So(err, ShouldBeNil)
				data, _ := os.ReadFile(fresh)
				So(string(data), ShouldEqual, "6\n")
			})
		})

		Convey("When running stats on a missing file", func() {
			_, err := run("", "stats", filepath.Join(dir, "missing.txt"))

			Convey("Then a file error is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "file error")
			})
		})

		Convey("When starting the shell with a preloaded file", func() {
			out, err := run("3\n7\n", "shell", "--file", path)

			Convey("Then the menu works on the loaded scores", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "Total scores: 4")
				So(out, ShouldContainSubstring, "Mean: 7.00")
			})
		})

		Convey("When running without a subcommand", func() {
			out, err := run("7\n")

			Convey("Then the menu is shown", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "Score Statistics Calculator")
				So(out, ShouldEndWith, "Goodbye!\n")
			})
		})

		Convey("When running version", func() {
			out, err := run("", "version")

			Convey("Then the version is printed", func() {
				So(err, ShouldBeNil)
				So(out, ShouldStartWith, "gradestats ")
			})
		})
	})
}
