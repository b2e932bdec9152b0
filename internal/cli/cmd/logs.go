package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/fontkeeper/internal/cli/styles"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const defaultLogsLines = 50

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View application logs",
	Long: `View the fontkeeper log file.

File logging is off by default; set logging.enable_file_log = true in
config.toml to turn it on.

Examples:
  fontkeeper logs             # Show the last 50 lines
  fontkeeper logs -n 200      # Show the last 200 lines
  fontkeeper logs -f          # Follow logs in real-time
  fontkeeper logs list        # List the log file and its backups`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List log files",
	Args:  cobra.NoArgs,
	RunE:  runLogsList,
}

// logsClearCmd removes rotated log files.
var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear old log files",
	Long: `Remove rotated log backups. Use --all to truncate the active log file
as well.`,
	Args: cobra.NoArgs,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsListCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "also truncate the active log file")
}

// LogFileInfo describes the active log file or one of its backups.
type LogFileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	Active  bool
}

func runLogs(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	logPath := filepath.Join(app.Config.Logging.LogDir, logging.FileName)
	if _, err := os.Stat(logPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("no log file at %s (is logging.enable_file_log set?)", logPath)
		}
		return fmt.Errorf("stat log file: %w", err)
	}

	if logsFollow {
		return tailLog(logPath, app.Theme)
	}
	return showLog(os.Stdout, logPath, logsLines, app.Theme)
}

func runLogsList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	theme := app.Theme

	files, err := listLogFiles(app.Config.Logging.LogDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println(theme.Subtle.Render("No log files found."))
		return nil
	}

	for _, f := range files {
		status := ""
		if f.Active {
			status = theme.SuccessStyle.Render("active")
		}
		fmt.Printf("  %s  %s  %s  %s\n",
			theme.Highlight.Render(f.Name),
			theme.Subtle.Render(f.ModTime.Format("2006-01-02 15:04:05")),
			status,
			theme.Subtle.Render("("+entity.HumanFileSize(f.Size)+")"),
		)
	}
	return nil
}

// listLogFiles returns the active log file first, then backups newest first.
func listLogFiles(logDir string) ([]LogFileInfo, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var files []LogFileInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (name != logging.FileName && !strings.HasPrefix(name, logging.FileName+".")) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, LogFileInfo{
			Name:    name,
			Path:    filepath.Join(logDir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Active:  name == logging.FileName,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Active != files[j].Active {
			return files[i].Active
		}
		// Timestamp suffixes sort chronologically.
		return files[i].Name > files[j].Name
	})
	return files, nil
}

// showLog writes the last n lines of a log file.
func showLog(out io.Writer, logPath string, n int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	var allLines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		allLines = append(allLines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	start := 0
	if n >= 0 && len(allLines) > n {
		start = len(allLines) - n
	}
	for _, line := range allLines[start:] {
		fmt.Fprintln(out, colorizeLogLine(line, theme))
	}
	return nil
}

// tailLog follows a log file in real-time.
func tailLog(logPath string, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, _ = file.Seek(0, io.SeekEnd)

	fmt.Println(theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Println()

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				// No full line yet; keep partial data.
				pending += chunk
				time.Sleep(100 * time.Millisecond)
				continue
			}
			return fmt.Errorf("read log file: %w", err)
		}

		pending += chunk
		for {
			idx := strings.IndexByte(pending, '\n')
			if idx == -1 {
				break
			}
			line := pending[:idx]
			pending = pending[idx+1:]
			fmt.Println(colorizeLogLine(line, theme))
		}
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil {
		return formatJSONLogLine(entry, theme)
	}

	// Console format: match the level token.
	switch {
	case containsAny(line, "ERR", "ERROR"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, "WRN", "WARN"):
		return theme.WarningStyle.Render(line)
	case containsAny(line, "DBG", "DEBUG", "TRC"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render("["+entry.Component+"]") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}

// containsAny checks if s contains any of the substrings.
func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func runLogsClear(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	theme := app.Theme

	files, err := listLogFiles(app.Config.Logging.LogDir)
	if err != nil {
		return err
	}

	removed, err := clearLogFiles(files, logsClearAll)
	if err != nil {
		return err
	}
	if removed == 0 {
		fmt.Println(theme.Subtle.Render("No logs to clear"))
		return nil
	}
	fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d log file(s)", removed)))
	return nil
}

// clearLogFiles removes backups and, with all set, truncates the active file.
func clearLogFiles(files []LogFileInfo, all bool) (int, error) {
	var removed int
	var errs []error
	for _, f := range files {
		switch {
		case !f.Active:
			if err := os.Remove(f.Path); err != nil {
				errs = append(errs, err)
				continue
			}
		case all:
			if err := os.Truncate(f.Path, 0); err != nil {
				errs = append(errs, err)
				continue
			}
		default:
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}
