package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	service "github.com/okian/gradestats/internal/app"
	"github.com/okian/gradestats/internal/domain/model"
)

// Menu options.
const (
	optAdd = iota + 1
	optShow
	optStats
	optSort
	optSave
	optLoad
	optQuit
)

const menuText = `
=========================================
 Score Statistics Calculator
=========================================
1. Add scores
2. Show all scores
3. Statistics (mean, highest, lowest, standard deviation)
4. Sort scores (ascending)
5. Save scores to file
6. Load scores from file
7. Quit
=========================================
`

// Menu is the interactive numbered menu. It reads one answer per line from
// in and writes prompts and results to out, so it can be scripted. Lines
// have no length limit.
type Menu struct {
	svc      *service.Service
	in       *bufio.Reader
	out      io.Writer
	dataFile string
	readErr  error
}

// NewMenu creates a menu driving svc. dataFile is offered as the default
// name when saving or loading.
func NewMenu(svc *service.Service, in io.Reader, out io.Writer, dataFile string) *Menu {
	return &Menu{
		svc:      svc,
		in:       bufio.NewReader(in),
		out:      out,
		dataFile: dataFile,
	}
}

// Run shows the menu until the user quits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printf("%s", menuText)
		line, ok := m.prompt("Choose an option: ")
		if !ok {
			m.printf("\nGoodbye!\n")
			return m.readErr
		}

		opt, err := strconv.Atoi(line)
		if err != nil {
			m.printf("Invalid input. Try again.\n")
			continue
		}

		switch opt {
		case optAdd:
			m.addScores(ctx)
		case optShow:
			m.showScores()
		case optStats:
			m.showStatistics(ctx)
		case optSort:
			m.sortScores(ctx)
		case optSave:
			m.save(ctx)
		case optLoad:
			m.load(ctx)
		case optQuit:
			m.printf("Goodbye!\n")
			return nil
		default:
			m.printf("Invalid option. Try again.\n")
		}
	}
}

func (m *Menu) addScores(ctx context.Context) {
	for {
		line, ok := m.prompt("Enter a score (0.0 - 10.0) or 's' to stop: ")
		if !ok || strings.EqualFold(line, "s") {
			return
		}

		v, err := parseScore(line)
		if err != nil {
			m.printf("Invalid input. Enter a number or 's' to stop.\n")
			continue
		}
		if err := m.svc.AddScore(ctx, v); err != nil {
			if errors.Is(err, model.ErrOutOfRange) {
				m.printf("Invalid score. Must be between 0.0 and 10.0.\n")
				continue
			}
			m.printf("Could not add score: %v\n", err)
			continue
		}
		m.printf("Score %.2f added. Total: %d\n", v, m.svc.Count())
	}
}

func (m *Menu) showScores() {
	writeEntries(m.out, m.svc)
}

func (m *Menu) showStatistics(ctx context.Context) {
	writeSummary(m.out, m.svc.Statistics(ctx))
}

func (m *Menu) sortScores(ctx context.Context) {
	if err := m.svc.Sort(ctx); err != nil {
		m.printf("No scores to sort.\n")
		return
	}
	m.printf("Scores sorted in ascending order.\n")
}

func (m *Menu) save(ctx context.Context) {
	path, ok := m.fileName("File name to save")
	if !ok {
		return
	}
	if err := m.svc.Save(ctx, path); err != nil {
		m.printf("Error saving file: %s\n", describe(err))
		return
	}
	m.printf("Saved to '%s'.\n", path)
}

func (m *Menu) load(ctx context.Context) {
	path, ok := m.fileName("File name to load")
	if !ok {
		return
	}
	n, err := m.svc.Load(ctx, path)
	if err != nil {
		m.printf("Error loading file: %s\n", describe(err))
		return
	}
	m.printf("Loaded from '%s'. Total scores: %d\n", path, n)
}

// fileName prompts for a path, falling back to the configured data file on
// an empty answer.
func (m *Menu) fileName(label string) (string, bool) {
	line, ok := m.prompt(fmt.Sprintf("%s [%s]: ", label, m.dataFile))
	if !ok {
		return "", false
	}
	if line == "" {
		return m.dataFile, true
	}
	return line, true
}

func (m *Menu) prompt(text string) (string, bool) {
	m.printf("%s", text)
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			m.readErr = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
