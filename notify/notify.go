// Package notify defines the UI surfaces the API client reaches for when
// it must tell the user something or move them somewhere: a toast-style
// Notifier and a Navigator for forced redirects. Server-side contexts
// have neither, so the no-op implementations are the defaults.
package notify

// Notifier surfaces an error message to the user.
type Notifier interface {
	Error(message string)
}

// Navigator performs a client-side navigation, e.g. to the sign-in page
// after a session invalidation.
type Navigator interface {
	NavigateTo(path string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

func (f NotifierFunc) Error(message string) { f(message) }

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) NavigateTo(path string) { f(path) }

// NopNotifier discards messages. Used in server rendering contexts where
// no UI surface exists yet.
type NopNotifier struct{}

func (NopNotifier) Error(string) {}

// NopNavigator discards navigations.
type NopNavigator struct{}

func (NopNavigator) NavigateTo(string) {}

var (
	_ Notifier  = NotifierFunc(nil)
	_ Navigator = NavigatorFunc(nil)
	_ Notifier  = NopNotifier{}
	_ Navigator = NopNavigator{}
)
