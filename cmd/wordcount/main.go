// Command wordcount runs the reference MapReduce job (word count or
// character frequency) over a text file, one input pair per line.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-coretools/btmr/mapreduce"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <input_file> <output_file> [word_count|char_freq]\n", os.Args[0])
		os.Exit(1)
	}
	inputPath, outputPath := os.Args[1], os.Args[2]
	mode := "word_count"
	if len(os.Args) > 3 {
		mode = os.Args[3]
	}

	mapFn := mapreduce.WordCountMap
	if mode == "char_freq" {
		mapFn = mapreduce.CharFreqMap
	} else if mode != "word_count" {
		fmt.Fprintf(os.Stderr, "unknown mode %q: want word_count or char_freq\n", mode)
		os.Exit(1)
	}

	in, err := os.Open(inputPath)
	if err != nil {
		log.Fatalf("opening input file: %v", err)
	}
	defer in.Close()

	coord := mapreduce.New()
	if err := coord.Configure(4, mapFn, mapreduce.SumReduce); err != nil {
		log.Fatalf("configuring job: %v", err)
	}
	if err := coord.IngestLines(in); err != nil {
		log.Fatalf("reading input: %v", err)
	}

	if err := coord.Run(); err != nil {
		log.Fatalf("running job: %v", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("creating output file: %v", err)
	}
	defer out.Close()

	for _, kv := range coord.TakeOutput() {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", kv.Key, kv.Value); err != nil {
			log.Fatalf("writing output: %v", err)
		}
	}
}
