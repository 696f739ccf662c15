package main

import (
	"bufio"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

const samplingInterval = 10 * time.Millisecond

var rssBytesFunc = rssBytes

// measurePeakResidentMemory runs fn while sampling the process RSS and
// reports how long fn took and the highest RSS seen.
func measurePeakResidentMemory(fn func() (Summary, error)) (Summary, time.Duration, float64, error) {
	baseline := rssBytesFunc()
	peak := baseline

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(samplingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if current := rssBytesFunc(); current > peak {
					peak = current
				}
			case <-stop:
				return
			}
		}
	}()

	start := time.Now()
	summary, err := fn()
	elapsed := time.Since(start)
	close(stop)
	wg.Wait()

	if current := rssBytesFunc(); current > peak {
		peak = current
	}
	return summary, elapsed, peak, err
}

// rssBytes reports the resident set size of this process, or 0 when it
// cannot be determined.
func rssBytes() float64 {
	if runtime.GOOS == "linux" {
		if v := procStatmRSS("/proc/self/statm"); v > 0 {
			return v
		}
		if v := procStatusRSS("/proc/self/status"); v > 0 {
			return v
		}
	}
	return psRSS(os.Getpid())
}

// procStatmRSS reads the second field of statm, counted in pages.
func procStatmRSS(path string) float64 {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return 0
	}
	pages, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return float64(pages * uint64(os.Getpagesize()))
}

// procStatusRSS reads the VmRSS line of a status file, counted in kB.
func procStatusRSS(path string) float64 {
	file, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		name, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok || name != "VmRSS" {
			continue
		}
		return kilobytes(strings.TrimSuffix(strings.TrimSpace(value), " kB"))
	}
	return 0
}

func psRSS(pid int) float64 {
	output, err := exec.Command("ps", "-o", "rss=", "-p", strconv.Itoa(pid)).Output()
	if err != nil {
		return 0
	}
	return kilobytes(string(output))
}

func kilobytes(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	kb, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return float64(kb * 1024)
}
