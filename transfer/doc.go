// Package transfer drives the word-by-word upload of a 128-entry gamma
// lookup table into FPGA-mapped memory.
//
// # Overview
//
// The Engine runs one TransferJob at a time on its own goroutine and
// reports progress through an ordered event channel:
//
//	eng := transfer.New(l)
//	events, err := eng.Start(ctx, img)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for ev := range events {
//	    switch ev.Kind {
//	    case transfer.EventSending:
//	        fmt.Printf("[%3d] %s\n", ev.Index, ev.Command)
//	    case transfer.EventCompleted:
//	        fmt.Printf("done, %d words\n", ev.Count)
//	    case transfer.EventFailed:
//	        fmt.Println("failed:", ev.Err)
//	    }
//	}
//
// Each word is written with an F-namespace command whose base address
// starts at 0x51700 and advances by 4:
//
//	F W 51700 00 <word 0 as 8 hex digits>
//	F W 51704 00 <word 1>
//	...
//
// # Failure Semantics
//
// A transport error fails the job at the current index and abandons
// the remaining words; entries already written are not rolled back and
// nothing is retried. A per-command timeout (empty response) is not a
// failure; the firmware does not acknowledge gamma writes reliably, so
// the upload continues. Cancelling the context fails the job at the
// next index boundary.
//
// # Exclusive Port Use
//
// While a job is running the engine issues commands back to back; the
// link serializes individual commands, but callers must not interleave
// their own traffic until the event channel closes.
package transfer
