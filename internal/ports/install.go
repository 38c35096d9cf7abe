package ports

import "context"

// InstallAffordance is an optional platform capability to install the app locally.
type InstallAffordance interface {
	Available() bool
	// Prompt asks the user and reports whether they accepted.
	Prompt(ctx context.Context) (bool, error)
}

// NoInstallAffordance is used on platforms that cannot offer installation.
type NoInstallAffordance struct{}

func (NoInstallAffordance) Available() bool {
	return false
}

func (NoInstallAffordance) Prompt(context.Context) (bool, error) {
	return false, nil
}
