package cpucache

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// defaultTimeout is the default timeout for system command execution.
const defaultTimeout = 5 * time.Second

// ComponentCache is the [DiagnosticInfo.Errors] key for a failed or
// unsupported cache detection strategy.
const ComponentCache = "cache"

// DiagnosticInfo describes what a detection run could and could not read.
// Use [Detector.Diagnostics] to retrieve it after calling [Detector.Detect].
type DiagnosticInfo struct {
	Errors    map[string]error // Sources that failed, keyed by sysctl name, path or command
	Collected []string         // Sources that were read successfully, in read order
	Notices   []string         // Messages meant for the user, e.g. an unsupported OS
	Strategy  string           // Name of the cache detection strategy that ran
	Fallback  []string         // Fields filled by the fallback source
}

// Detector configures and runs processor cache detection.
// Detector methods are safe for concurrent use after configuration is complete.
type Detector struct {
	commandExecutor CommandExecutor
	fileReader      FileReader
	sysctl          SysctlReader
	fallback        FallbackSource
	logger          *slog.Logger
	diagnostics     *DiagnosticInfo
	platform        Platform
	mu              sync.Mutex
	nativeSysctl    bool
}

// New creates a Detector for the running platform that uses real system
// commands and files.
func New() *Detector {
	return &Detector{
		commandExecutor: &defaultCommandExecutor{
			Timeout: defaultTimeout,
		},
		fileReader: osFileReader{},
		platform:   CurrentPlatform(),
	}
}

// WithExecutor sets a custom [CommandExecutor], enabling deterministic testing
// without real system commands.
func (d *Detector) WithExecutor(executor CommandExecutor) *Detector {
	d.commandExecutor = executor

	return d
}

// WithFileReader sets a custom [FileReader] for /proc and /sys access.
func (d *Detector) WithFileReader(reader FileReader) *Detector {
	d.fileReader = reader

	return d
}

// WithSysctl sets a custom [SysctlReader]. It takes precedence over
// [Detector.WithNativeSysctl]. By default sysctl values are read with
// `sysctl -n` through the command executor.
func (d *Detector) WithSysctl(reader SysctlReader) *Detector {
	d.sysctl = reader

	return d
}

// WithNativeSysctl reads sysctl values through the sysctl(3) syscall instead
// of the sysctl command. It only has an effect on darwin.
func (d *Detector) WithNativeSysctl() *Detector {
	d.nativeSysctl = true

	return d
}

// WithPlatform overrides the detected operating system and architecture.
func (d *Detector) WithPlatform(platform Platform) *Detector {
	d.platform = platform

	return d
}

// WithTimeout sets the per-command timeout of the default executor. It has
// no effect on an executor set with [Detector.WithExecutor].
func (d *Detector) WithTimeout(timeout time.Duration) *Detector {
	if e, ok := d.commandExecutor.(*defaultCommandExecutor); ok {
		e.Timeout = timeout
	}

	return d
}

// WithFallback fills undetected fields from the CPUID instruction and
// gopsutil. Values read from the platform sources always win.
func (d *Detector) WithFallback() *Detector {
	d.fallback = hardwareFallback{}

	return d
}

// WithFallbackSource is WithFallback with a custom [FallbackSource].
func (d *Detector) WithFallbackSource(source FallbackSource) *Detector {
	d.fallback = source

	return d
}

// WithLogger sets an optional [*slog.Logger] for observability.
// A nil logger (the default) disables all logging.
func (d *Detector) WithLogger(logger *slog.Logger) *Detector {
	d.logger = logger

	return d
}

// Detect identifies the processor and collects its cache sizes.
// Unreadable sources degrade individual fields to their zero value and are
// reported through [Detector.Diagnostics]; an error is only returned when
// ctx is already done.
func (d *Detector) Detect(ctx context.Context) (*ProcessorInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	diag := &DiagnosticInfo{
		Errors: make(map[string]error),
	}
	p := &probe{
		executor: d.commandExecutor,
		files:    d.fileReader,
		sysctl:   d.sysctlReader(),
		logger:   d.logger,
		diag:     diag,
	}

	d.logInfo("detecting processor", "os", d.platform.OS, "arch", d.platform.Arch)

	id := detectIdentity(ctx, p, d.platform)

	s := selectStrategy(d.platform, id.Architecture)
	diag.Strategy = s.name()
	d.logDebug("selected cache strategy", "strategy", diag.Strategy, "architecture", id.Architecture)

	levels, err := s.levels(ctx, p)
	if err != nil {
		diag.Errors[ComponentCache] = err
		diag.Notices = append(diag.Notices, noticeFor(d.platform, err))
		d.logWarn("cache detection failed", "strategy", diag.Strategy, "error", err)
	}

	if d.fallback != nil {
		fb, fbErr := d.fallback.Fallback(ctx)
		if fbErr != nil {
			d.logWarn("fallback source failed", "error", fbErr)
		}
		diag.Fallback = applyFallback(&id, levels, fb)
	}

	info := &ProcessorInfo{
		Architecture:    id.Architecture,
		RawArchitecture: d.platform.Arch,
		ModelName:       id.ModelName,
	}
	for _, level := range levels {
		info.SetLevel(level)
	}

	d.diagnostics = diag
	d.logInfo("processor detected",
		"architecture", info.Architecture,
		"levels", len(info.Levels),
		"errors_count", len(diag.Errors),
	)

	return info, nil
}

// Diagnostics returns what the last call to [Detector.Detect] read and
// failed to read. Returns nil if Detect has not been called yet.
func (d *Detector) Diagnostics() *DiagnosticInfo {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.diagnostics
}

func (d *Detector) sysctlReader() SysctlReader {
	switch {
	case d.sysctl != nil:
		return d.sysctl
	case d.nativeSysctl && d.platform.isDarwin():
		return nativeSysctlReader{}
	default:
		return commandSysctl{executor: d.commandExecutor}
	}
}

func noticeFor(platform Platform, err error) string {
	if errors.Is(err, ErrUnsupportedPlatform) {
		return "Unsupported operating system: " + platform.OS
	}

	return err.Error()
}

// logDebug logs at debug level if a logger is configured.
func (d *Detector) logDebug(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Debug(msg, args...)
	}
}

// logInfo logs at info level if a logger is configured.
func (d *Detector) logInfo(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Info(msg, args...)
	}
}

// logWarn logs at warn level if a logger is configured.
func (d *Detector) logWarn(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Warn(msg, args...)
	}
}
