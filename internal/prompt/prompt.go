package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/UnknownOlympus/compass/internal/models"
)

// DefaultQuitWord ends the list of directions or people.
const DefaultQuitWord = "q"

// quitAlias is accepted in addition to the configured quit word.
const quitAlias = "quit"

// ErrAborted is returned when the input ends before the dialogue is complete.
var ErrAborted = errors.New("input ended before the routes were complete")

// Session asks a person for the routes of every member of a group.
type Session struct {
	scanner  *bufio.Scanner
	out      io.Writer
	quitWord string

	startReader sync.Once
	answers     chan answer // Lines read in the background, closed at the end of input.
}

type answer struct {
	text string
	err  error
}

// NewSession creates a session reading answers from in and writing questions to out.
// An empty quitWord falls back to DefaultQuitWord.
func NewSession(in io.Reader, out io.Writer, quitWord string) *Session {
	if strings.TrimSpace(quitWord) == "" {
		quitWord = DefaultQuitWord
	}

	return &Session{
		scanner:  bufio.NewScanner(in),
		out:      out,
		quitWord: strings.TrimSpace(quitWord),
		answers:  make(chan answer, 1),
	}
}

// Collect runs the dialogue and returns the assembled input.
// Answers that are not numbers are left for the calculator to reject.
func (s *Session) Collect(ctx context.Context) (models.Input, error) {
	var input models.Input

	s.println("Hi! Let's find the average destination and the worst direction :)\n")

	answer, err := s.ask(ctx, "Please enter the number of people")
	if err != nil {
		return input, err
	}
	input.NumberOfPeople = parseCount(answer)

	s.println(fmt.Sprintf("Please enter the routes that you gave from each of %d people", input.NumberOfPeople))
	for i := range input.NumberOfPeople {
		s.println(fmt.Sprintf("\nThe route of the person %d", i+1))

		route, done, err := s.collectRoute(ctx)
		if err != nil {
			return input, err
		}
		if done {
			break
		}
		input.Routes = append(input.Routes, route)
	}

	return input, nil
}

// collectRoute asks for one route. done reports that the quit word was given as the X coordinate.
// Y is still asked for, like every other answer pair.
func (s *Session) collectRoute(ctx context.Context) (models.Route, bool, error) {
	var route models.Route

	x, err := s.ask(ctx, "X coordinate of the location when you meet the person")
	if err != nil {
		return route, false, err
	}
	y, err := s.ask(ctx, "Y coordinate of the location when you meet the person")
	if err != nil {
		return route, false, err
	}
	if s.isQuit(x) {
		return route, true, nil
	}
	route.Location = []float64{parseCoordinate(x), parseCoordinate(y)}

	s.println("Enter the directions")
	s.println(fmt.Sprintf(
		"When these directions end, enter '%s' as the answer to the question about next turn", s.quitWord,
	))

	for isFirst := true; ; isFirst = false {
		var direction models.Direction

		if isFirst {
			answer, err := s.ask(ctx,
				"start - the initial direction you are facing in degrees (east is 0 degrees, north is 90 degrees)")
			if err != nil {
				return route, false, err
			}
			direction.Start = parseNumber(answer)
		} else {
			s.println("\nNext direction")
			answer, err := s.ask(ctx,
				"turn - an angle in degrees you should turn. A positive angle indicates to turn to the left")
			if err != nil {
				return route, false, err
			}
			if s.isQuit(answer) {
				break
			}
			direction.Turn = parseNumber(answer)
		}

		answer, err := s.ask(ctx, "walk - a number of units to walk")
		if err != nil {
			return route, false, err
		}
		direction.Walk = parseNumber(answer)

		route.Directions = append(route.Directions, direction)
	}

	return route, false, nil
}

// ask writes a question and waits for the answer line or the end of ctx.
func (s *Session) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.println(question)
	s.startReader.Do(func() { go s.read() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case ans, ok := <-s.answers:
		if !ok {
			return "", ErrAborted
		}
		return ans.text, ans.err
	}
}

// read forwards answer lines until the input ends. A blocked read outlives a
// cancelled session, the process exits right after.
func (s *Session) read() {
	defer close(s.answers)

	for s.scanner.Scan() {
		s.answers <- answer{text: strings.TrimSpace(s.scanner.Text())}
	}
	if err := s.scanner.Err(); err != nil {
		s.answers <- answer{err: fmt.Errorf("failed to read answer: %w", err)}
	}
}

func (s *Session) isQuit(answer string) bool {
	return strings.EqualFold(answer, s.quitWord) || strings.EqualFold(answer, quitAlias)
}

func (s *Session) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

// parseCount reads a whole number, truncating fractions. Anything else counts as 0.
func parseCount(answer string) int {
	if n, err := strconv.Atoi(answer); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(answer, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return 0
}

// parseNumber returns nil when the answer is not a number.
func parseNumber(answer string) *float64 {
	f, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseCoordinate maps a non-number to NaN, which the calculator rejects as non-numeric.
func parseCoordinate(answer string) float64 {
	if f := parseNumber(answer); f != nil {
		return *f
	}
	return math.NaN()
}
