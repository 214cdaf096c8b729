// Command protoasm assembles Proto mnemonics into a hex memory image
// consumable by protoemu -f.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/andre-morales/protoemu/pkg/asmtext"
)

func main() {
	log.SetFlags(0)

	filename := flag.String("f", "", "assembly source file")
	flag.Parse()
	if *filename == "" {
		log.Fatal("usage: protoasm -f <assembly-source-file>")
	}

	fp, err := os.Open(*filename)
	if err != nil {
		log.Fatal(err)
	}
	defer fp.Close()

	for ioe := range asmtext.StartAssembler(fp) {
		if ioe.Error != nil {
			log.Fatal(ioe.Error)
		}
		fmt.Printf("0x%04X\n", ioe.Instruction.Encode())
	}
}
