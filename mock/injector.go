package mock

import "github.com/fwojciec/fontloc"

var _ fontloc.HTMLInjector = (*HTMLInjector)(nil)

// HTMLInjector is a mock implementation of fontloc.HTMLInjector.
type HTMLInjector struct {
	InjectFn func(html, css, href string) (string, error)
}

func (i *HTMLInjector) Inject(html, css, href string) (string, error) {
	return i.InjectFn(html, css, href)
}
