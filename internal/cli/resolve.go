package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveProjectID turns user input into a project UUID. Accepts an exact
// UUID, a UUID prefix, or a case-insensitive project name.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveWorkItemID turns user input into a work item UUID within a project,
// accepting an exact UUID, a UUID prefix, or a case-insensitive title.
func resolveWorkItemID(ctx context.Context, app *App, projectID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("work item ID is required")
	}

	items, err := app.WorkItems.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}

	for _, w := range items {
		if w.ID == input {
			return w.ID, nil
		}
	}

	for _, w := range items {
		if strings.EqualFold(w.Title, input) {
			return w.ID, nil
		}
	}

	var matches []string
	for _, w := range items {
		if strings.HasPrefix(w.ID, input) {
			matches = append(matches, w.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("work item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("work item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
