package i18n

import (
	"errors"
	"fmt"
	"sync"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Is(target error) bool
	Format(provider MessageProvider) string
}

// MessageProvider defines an interface for getting message templates
type MessageProvider interface {
	GetMessage(key string) string
}

// messageFormatter is implemented by providers which can format a message themselves
type messageFormatter interface {
	Sprintf(key string, args ...interface{}) string
}

// BundleMessageProvider implements MessageProvider using a bundle
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider creates a new provider with a bundle
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{
		bundle: bundle,
	}
}

// GetMessage returns the template for key in the bundle's default language
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	return p.bundle.Message(key)
}

// Sprintf formats key with args using the bundle's locale-aware printer
func (p *BundleMessageProvider) Sprintf(key string, args ...interface{}) string {
	if p.bundle == nil {
		return fmt.Sprintf(key, args...)
	}

	return p.bundle.T(key, args...)
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support.
//
// Example usage:
//
//	err := NewError("goarg.error.empty_flag")
//	err = err.WithArgs("field", "value")
//	err = err.Wrap(originalError)
type TrError struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	// The translation key
	key string
	// Optional format arguments
	args []interface{}
	// Optional wrapped error
	wrapped         error
	messageProvider MessageProvider
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	provider := getDefaultProvider()
	return &TrError{
		sentinel:        errors.New(provider.GetMessage(key)),
		key:             key,
		messageProvider: provider,
	}
}

// NewErrorWithProvider creates a new translatable error with a key and specific provider
func NewErrorWithProvider(key string, provider MessageProvider) *TrError {
	return &TrError{
		sentinel:        errors.New(provider.GetMessage(key)),
		key:             key,
		messageProvider: provider,
	}
}

// Error returns the message in the provider's current language
func (e *TrError) Error() string {
	return e.Format(e.messageProvider)
}

// Format renders the error using the given provider
func (e *TrError) Format(provider MessageProvider) string {
	var msg string
	if f, ok := provider.(messageFormatter); ok && len(e.args) > 0 {
		msg = f.Sprintf(e.key, e.args...)
	} else {
		msg = provider.GetMessage(e.key)
		if len(e.args) > 0 {
			msg = fmt.Sprintf(msg, e.args...)
		}
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         err,
		messageProvider: e.messageProvider,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel || target == e
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by errors created with NewError
// from now on
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}

	return defaultProvider
}
