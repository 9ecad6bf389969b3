package host

import "github.com/bluehill/nativecom"

//com:visible
//com:clsid E10F1111-2222-3333-4444-555566667777
type Widget struct{}

//com:visible
type WidgetFactory struct {
	nativecom.UnimplementedClassFactory
	nativecom.FactoryFor[Widget]
}

// BareFactory carries the association but none of the markers. Resolution
// still reports it; rejecting it is the validator's job.
type BareFactory struct {
	nativecom.FactoryFor[Widget]
}
