package menu

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/yndnr/tokenadm/internal/cli/output"
	"github.com/yndnr/tokenadm/internal/core/domain"
	"github.com/yndnr/tokenadm/internal/core/service"
	"github.com/yndnr/tokenadm/internal/storage/tokenfile"
	"github.com/yndnr/tokenadm/internal/telemetry/logger"
)

// Title is shown once when the menu starts.
const Title = "Token Manager"

// errExit ends the loop with success.
var errExit = errors.New("menu: exit")

// Store is the persistence used by the menu.
type Store interface {
	Load() (*domain.Table, []tokenfile.Issue, error)
	Save(table *domain.Table) error
	Diverged() bool
}

// ChangeNotifier reports changes made to the token file by other processes.
type ChangeNotifier interface {
	Changed() bool
}

// Config holds the dependencies of a Menu.
type Config struct {
	Input   io.Reader // defaults to os.Stdin
	Output  io.Writer // defaults to os.Stdout
	Color   bool
	Store   Store
	Watcher ChangeNotifier // optional
	Service *service.TokenService
	Logger  logger.Logger
}

// Menu is the interactive token management loop.
type Menu struct {
	reader  *bufio.Reader
	console *output.Console
	store   Store
	watcher ChangeNotifier
	service *service.TokenService
	logger  logger.Logger
}

// New creates a Menu from cfg.
func New(cfg *Config) *Menu {
	input := cfg.Input
	if input == nil {
		input = os.Stdin
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	svc := cfg.Service
	if svc == nil {
		svc = service.NewTokenService(nil)
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	return &Menu{
		reader:  bufio.NewReader(input),
		console: output.NewConsole(out, cfg.Color),
		store:   cfg.Store,
		watcher: cfg.Watcher,
		service: svc,
		logger:  log,
	}
}

// Run starts the loop. It returns nil when the operator exits or the
// input ends, and an error only when reading input fails.
func (m *Menu) Run() error {
	m.console.Header(Title)

	for {
		err := m.iterate()
		switch {
		case err == nil:
			continue
		case errors.Is(err, errExit):
			return nil
		case errors.Is(err, io.EOF):
			m.console.Println()
			m.logger.Debug("input closed, leaving menu")
			return nil
		default:
			m.logger.Error("failed to read input",
				"error", err,
			)
			return err
		}
	}
}

// iterate runs one pass of the loop: reload, show, read, dispatch, save.
func (m *Menu) iterate() error {
	table := m.load()

	m.showMainMenu()
	choice, err := m.prompt("\nChoose an option: ")
	if err != nil {
		return err
	}

	state, ok := parseChoice(choice)
	if !ok {
		m.console.Error("Invalid option")
		return m.pause()
	}
	m.logger.Debug("menu selection",
		"state", state.String(),
	)

	if state == StateExiting {
		m.console.Info("Exiting...")
		return errExit
	}

	if err := m.dispatch(state, table); err != nil {
		return err
	}
	if state.Mutates() {
		m.save(table)
	}
	return m.pause()
}

func (m *Menu) dispatch(state State, table *domain.Table) error {
	switch state {
	case StateListing:
		m.list(table)
	case StateAdding:
		return m.add(table)
	case StateRemoving:
		return m.remove(table)
	case StateUpdating:
		return m.update(table)
	case StateCleaningExpired:
		return m.cleanExpired(table)
	case StateShowingStats:
		m.stats(table)
	}
	return nil
}

// load reads the token file. Errors are reported and an empty table is
// used so the loop can continue.
func (m *Menu) load() *domain.Table {
	external := m.watcher == nil || m.watcher.Changed()

	table, issues, err := m.store.Load()
	if err != nil {
		m.fail(err)
		return domain.NewTable()
	}
	if external && m.store.Diverged() {
		m.console.Info("Token file changed outside this session, reloaded")
	}
	for _, issue := range issues {
		m.console.Warning("%s", issue.String())
	}
	return table
}

func (m *Menu) save(table *domain.Table) {
	if err := m.store.Save(table); err != nil {
		m.fail(err)
		return
	}
	m.console.Success("Changes saved")
}

func (m *Menu) showMainMenu() {
	m.console.Section("Main Menu:")
	for _, opt := range mainOptions {
		m.console.Printf("%s. %s\n", opt.key, opt.label)
	}
}

// prompt shows message and reads one trimmed line.
func (m *Menu) prompt(message string) (string, error) {
	m.console.Prompt(message)
	return m.readLine()
}

// readLine returns the next line without surrounding whitespace. A final
// line without newline is returned before io.EOF is reported.
func (m *Menu) readLine() (string, error) {
	line, err := m.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) pause() error {
	_, err := m.prompt("\nPress ENTER to continue...")
	return err
}
