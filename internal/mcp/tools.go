// Package mcp exposes a running tour to agents over the Model Context
// Protocol. Every tool drives the tour through its imperative handle.
package mcp

import (
	"context"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/felixgeelhaar/tourguide/internal/app"
	"github.com/felixgeelhaar/tourguide/internal/domain/tour"
	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// StatusInput is the input for the tour_status tool.
type StatusInput struct{}

// StatusOutput describes the tour after the tool ran.
type StatusOutput struct {
	Version     string    `json:"version"`
	TourID      string    `json:"tour_id"`
	Title       string    `json:"title,omitempty"`
	InstanceID  string    `json:"instance_id,omitempty"`
	Phase       string    `json:"phase"`
	Active      bool      `json:"active"`
	Completed   bool      `json:"completed"`
	CurrentStep int       `json:"current_step"`
	TotalSteps  int       `json:"total_steps"`
	Target      string    `json:"target,omitempty"`
	TargetFound bool      `json:"target_found"`
	Box         *Box      `json:"box,omitempty"`
	Step        *StepInfo `json:"step,omitempty"`
}

// Box is a target's bounding box.
type Box struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// StepInfo describes one dialog step.
type StepInfo struct {
	Index      int    `json:"index"`
	Target     string `json:"target"`
	Title      string `json:"title,omitempty"`
	Body       string `json:"body,omitempty"`
	Placement  string `json:"placement"`
	Registered bool   `json:"registered"`
	Current    bool   `json:"current"`
}

// StepsInput is the input for the tour_steps tool.
type StepsInput struct{}

// StepsOutput lists the tour's steps.
type StepsOutput struct {
	TourID string     `json:"tour_id"`
	Steps  []StepInfo `json:"steps"`
}

// NavigateInput is the input for tools that take no arguments.
type NavigateInput struct{}

// GotoInput is the input for the tour_goto tool.
type GotoInput struct {
	Step int `json:"step" jsonschema:"required,description=Zero-based step index to show"`
}

// DismissInput is the input for the tour_dismiss tool.
type DismissInput struct {
	Reason string `json:"reason,omitempty" jsonschema:"description=Why the tour is being closed (logged only)"`
}

// CompleteInput is the input for the tour_complete tool.
type CompleteInput struct {
	Confirm bool `json:"confirm" jsonschema:"required,description=Must be true to mark the tour completed"`
}

// VersionInfo contains version metadata for the MCP server.
type VersionInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// RegisterAll registers all MCP tools with the server.
func RegisterAll(srv *mcp.Server, session *app.Session, versionInfo VersionInfo, logger ports.Logger) {
	// Inspection
	registerStatusTool(srv, session, versionInfo)
	registerStepsTool(srv, session)

	// Navigation
	registerStartTool(srv, session, versionInfo)
	registerNextTool(srv, session, versionInfo)
	registerPrevTool(srv, session, versionInfo)
	registerGotoTool(srv, session, versionInfo)

	// Closing
	registerDismissTool(srv, session, versionInfo, logger)
	registerCompleteTool(srv, session, versionInfo)
}

func registerStatusTool(srv *mcp.Server, session *app.Session, versionInfo VersionInfo) {
	srv.Tool("tour_status").
		Description("Show the tour's phase, current step and where its target is on screen.").
		ReadOnly().
		Handler(func(_ context.Context, _ StatusInput) (*StatusOutput, error) {
			return status(session, versionInfo), nil
		})
}

func registerStepsTool(srv *mcp.Server, session *app.Session) {
	srv.Tool("tour_steps").
		Description("List every step of the tour with its target and whether the target is registered.").
		ReadOnly().
		Handler(func(_ context.Context, _ StepsInput) (*StepsOutput, error) {
			def := session.Definition()
			return &StepsOutput{TourID: def.ID, Steps: steps(session)}, nil
		})
}

func registerStartTool(srv *mcp.Server, session *app.Session, versionInfo VersionInfo) {
	srv.Tool("tour_start").
		Description("Start the tour from its initial step. Restarts a finished tour.").
		Handler(func(_ context.Context, _ NavigateInput) (*StatusOutput, error) {
			return drive(session, versionInfo, (*tour.Handle).Start), nil
		})
}

func registerNextTool(srv *mcp.Server, session *app.Session, versionInfo VersionInfo) {
	srv.Tool("tour_next").
		Description("Advance to the next step. On the last step this completes the tour.").
		Handler(func(_ context.Context, _ NavigateInput) (*StatusOutput, error) {
			return drive(session, versionInfo, (*tour.Handle).NextStep), nil
		})
}

func registerPrevTool(srv *mcp.Server, session *app.Session, versionInfo VersionInfo) {
	srv.Tool("tour_prev").
		Description("Go back one step. Does nothing on the first step.").
		Handler(func(_ context.Context, _ NavigateInput) (*StatusOutput, error) {
			return drive(session, versionInfo, (*tour.Handle).PrevStep), nil
		})
}

func registerGotoTool(srv *mcp.Server, session *app.Session, versionInfo VersionInfo) {
	srv.Tool("tour_goto").
		Description("Jump to a step by zero-based index. The tour must be active.").
		Handler(func(_ context.Context, in GotoInput) (*StatusOutput, error) {
			if err := ValidateGotoInput(&in, session.Snapshot()); err != nil {
				return nil, err
			}
			return drive(session, versionInfo, func(h *tour.Handle) { h.GoToStep(in.Step) }), nil
		})
}

func registerDismissTool(srv *mcp.Server, session *app.Session, versionInfo VersionInfo, logger ports.Logger) {
	srv.Tool("tour_dismiss").
		Description("Close the tour where it is. Progress records the step it was closed on.").
		Destructive().
		Handler(func(ctx context.Context, in DismissInput) (*StatusOutput, error) {
			if logger != nil && in.Reason != "" {
				logger.Info(ctx, "tour dismissed by agent", ports.F("reason", in.Reason))
			}
			return drive(session, versionInfo, (*tour.Handle).Dismiss), nil
		})
}

func registerCompleteTool(srv *mcp.Server, session *app.Session, versionInfo VersionInfo) {
	srv.Tool("tour_complete").
		Description("Mark the tour completed from any step. REQUIRES confirm=true.").
		Destructive().
		Handler(func(_ context.Context, in CompleteInput) (*StatusOutput, error) {
			if err := ValidateCompleteInput(&in); err != nil {
				return nil, err
			}
			return drive(session, versionInfo, (*tour.Handle).Complete), nil
		})
}

// drive runs one handle call, resyncs mounted steps and reports the result.
func drive(session *app.Session, versionInfo VersionInfo, fn func(*tour.Handle)) *StatusOutput {
	fn(session.Handle())
	session.Sync()
	return status(session, versionInfo)
}

func status(session *app.Session, versionInfo VersionInfo) *StatusOutput {
	snap := session.Snapshot()
	def := session.Definition()

	out := &StatusOutput{
		Version:     versionInfo.Version,
		TourID:      snap.TourID,
		Title:       def.Title,
		InstanceID:  snap.InstanceID,
		Phase:       string(snap.Phase),
		Active:      snap.IsActive,
		Completed:   snap.IsCompleted,
		CurrentStep: snap.CurrentStep,
		TotalSteps:  snap.TotalSteps,
		Target:      snap.Locator,
		TargetFound: snap.HasTarget(),
	}

	if snap.Target != nil && session.Document() != nil {
		if r, ok := session.Document().BoundingBox(snap.Target); ok {
			out.Box = &Box{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}
		}
	}

	if snap.IsActive {
		for _, s := range steps(session) {
			if s.Current {
				out.Step = &s
				break
			}
		}
	}
	return out
}

func steps(session *app.Session) []StepInfo {
	snap := session.Snapshot()
	registry := session.Controller().Registry()

	dialogs := session.Definition().Dialogs()
	out := make([]StepInfo, 0, len(dialogs))
	for i, d := range dialogs {
		_, registered := registry[i]
		out = append(out, StepInfo{
			Index:      i,
			Target:     d.Target,
			Title:      d.Title,
			Body:       d.Body,
			Placement:  string(d.Placement),
			Registered: registered,
			Current:    snap.IsActive && snap.CurrentStep == i,
		})
	}
	return out
}
