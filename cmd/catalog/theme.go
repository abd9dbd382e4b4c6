package catalog

import "log/slog"

// SetTheme stores the appearance mode in the settings file.
func SetTheme(mode string) error {
	store := openStore()

	if err := store.SetSetting("appearance_mode", mode); err != nil {
		return err
	}

	slog.Info("Appearance mode set", "mode", mode)
	return nil
}
