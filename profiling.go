package main

import (
	"log"
	"os"
	"runtime/pprof"
	"sync"
)

// startDefaultPGORecording begins writing a CPU profile to path. The returned
// stop function is safe to call more than once.
func startDefaultPGORecording(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	log.Printf("Recording CPU profile to %s", path)
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				log.Printf("Closing %s failed: %v", path, err)
				return
			}
			log.Printf("Wrote CPU profile %s", path)
		})
	}
	return stop, nil
}
