package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/worksphere/worksphere-backend-go/internal/domain/attendance"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/payroll"
	"golang.org/x/sync/errgroup"
)

// Snapshot is the workforce state loaded at startup.
type Snapshot struct {
	Employees  []employee.Employee
	Attendance []attendance.Record
	Payroll    []payroll.Record
}

// Files names the three documents.
type Files struct {
	Employees  string
	Attendance string
	Payroll    string
}

var DefaultFiles = Files{
	Employees:  "employee_info.json",
	Attendance: "attendance.json",
	Payroll:    "payroll_data.json",
}

// LoadError names the document that could not be fetched or decoded.
type LoadError struct {
	Document string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Document, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type Origin string

const (
	OriginSource   Origin = "source"
	OriginEmbedded Origin = "embedded"
)

type Loader struct {
	source  Source
	files   Files
	timeout time.Duration
}

// NewLoader builds a loader; a zero timeout means no deadline beyond ctx.
func NewLoader(source Source, files Files, timeout time.Duration) *Loader {
	return &Loader{source: source, files: files, timeout: timeout}
}

// Load fetches the three documents concurrently. Any failure fails the whole load.
func (l *Loader) Load(ctx context.Context) (Snapshot, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	var (
		empDoc employeeDocument
		attDoc attendanceDocument
		payDoc payrollDocument
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.fetch(gctx, l.files.Employees, &empDoc) })
	g.Go(func() error { return l.fetch(gctx, l.files.Attendance, &attDoc) })
	g.Go(func() error { return l.fetch(gctx, l.files.Payroll, &payDoc) })

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Employees:  empDoc.toDomain(),
		Attendance: attDoc.toDomain(),
		Payroll:    payDoc.toDomain(),
	}, nil
}

func (l *Loader) fetch(ctx context.Context, name string, v any) error {
	rc, err := l.source.Open(ctx, name)
	if err != nil {
		return &LoadError{Document: name, Err: err}
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return &LoadError{Document: name, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// Embedded returns the bundled sample workforce.
func Embedded() (Snapshot, error) {
	return NewLoader(EmbeddedSource{}, DefaultFiles, 0).Load(context.Background())
}

// LoadWithFallback uses the loader's snapshot when every document loads, otherwise the embedded one.
func LoadWithFallback(ctx context.Context, l *Loader) (Snapshot, Origin, error) {
	snap, err := l.Load(ctx)
	if err == nil {
		slog.Info("dataset loaded",
			"employees", len(snap.Employees),
			"attendance", len(snap.Attendance),
			"payroll", len(snap.Payroll))
		return snap, OriginSource, nil
	}

	slog.Info("dataset unavailable, using embedded sample data", "reason", err.Error())
	snap, err = Embedded()
	if err != nil {
		return Snapshot{}, "", fmt.Errorf("failed to load embedded dataset: %w", err)
	}
	return snap, OriginEmbedded, nil
}
