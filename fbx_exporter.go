package main

import (
	"flag"
	"log"
	"os"

	"github.com/opforge/fbxexport/fbxsdk"
	"github.com/opforge/fbxexport/opnet"
	"github.com/opforge/fbxexport/rop"
	"github.com/opforge/fbxexport/utils"
)

var scenePath = flag.String("scene", "", "Path to the scene yaml document")
var outPath = flag.String("out", "", "Path to the output fbx file")
var optionsPath = flag.String("options", "", "Path to an export options yaml file")
var startFrame = flag.Float64("start", 1, "First exported frame")
var endFrame = flag.Float64("end", 1, "Last exported frame")
var exportAscii = flag.Bool("ascii", false, "Write an ascii fbx instead of binary")
var listVersions = flag.Bool("versions", false, "List the writable fbx versions and exit")
var debug = flag.Bool("debug", false, "Dump the effective options and export timings")

func main() {
	flag.Parse()

	if *listVersions {
		for _, v := range fbxsdk.Versions() {
			log.Printf("[main] %s", v)
		}
		return
	}

	if *scenePath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	director, err := opnet.LoadSceneFile(*scenePath)
	if err != nil {
		log.Fatalf("[main] Failed to load scene: %v", err)
	}

	opts := &rop.Options{}
	opts.Reset()
	if *optionsPath != "" {
		if opts, err = rop.LoadOptionsFile(*optionsPath); err != nil {
			log.Fatalf("[main] Failed to load options: %v", err)
		}
	}
	if *exportAscii {
		opts.ExportInAscii = true
	}
	if *debug {
		utils.LogDump(opts)
	}

	cm := director.ChannelManager()
	startTime := cm.TimeFromFrame(*startFrame)
	endTime := cm.TimeFromFrame(*endFrame)

	e := rop.NewExporter(director)
	ok := e.InitializeExport(*outPath, startTime, endTime, opts)
	if ok {
		ok = e.DoExport()
	}
	ok = e.FinishExport() && ok

	for _, entry := range e.Errors().Entries() {
		if entry.Fatal {
			log.Printf("[main] export error: %s", entry.Message)
		} else {
			log.Printf("[main] export warning: %s", entry.Message)
		}
	}
	if *debug {
		log.Printf("[main] timings: %v", e.Timings())
	}
	if !ok {
		os.Exit(1)
	}
	log.Printf("[main] Exported %q", *outPath)
}
