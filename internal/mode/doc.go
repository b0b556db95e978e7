// Package mode manages optional platform integrations ("modes") of an app,
// such as Cordova. Each integration owns one subdirectory of the app; its
// presence is read from disk on every call and never cached. Add creates the
// integration by running the platform's command-line tool and Remove deletes
// the subdirectory. Both are no-ops with a warning when the integration is
// already in the requested state.
package mode
