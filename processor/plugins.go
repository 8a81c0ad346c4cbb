package processor

import "sync"

var (
	registryLock         sync.Mutex
	registeredProcessors []Processor
)

// RegisterProcessor registers a processor to be run by bindgen after the
// registration files have been generated. Processors are usually registered
// from init functions.
func RegisterProcessor(p Processor) {
	registryLock.Lock()
	defer registryLock.Unlock()
	registeredProcessors = append(registeredProcessors, p)
}

// AllRegisteredProcessors returns the registered processors, in registration
// order.
func AllRegisteredProcessors() []Processor {
	registryLock.Lock()
	defer registryLock.Unlock()
	procs := make([]Processor, len(registeredProcessors))
	copy(procs, registeredProcessors)
	return procs
}
