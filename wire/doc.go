// Package wire frames BUFR messages inside raw byte streams.
//
// A BUFR file or feed is a simple concatenation: each message starts with
// the four byte magic "BUFR", followed by a 24 bit total length and an
// edition number (section 0), and ends with the terminator "7777". Nothing
// in the format delimits messages beyond that, and operational streams put
// routing envelopes and other noise between them.
//
// # Scanning
//
// Scanner walks a stream and yields each message as a RawMessage, skipping
// any bytes between messages:
//
//	sc, err := wire.NewScanner(file)
//	if err != nil {
//	    return err
//	}
//	for msg, err := range sc.Messages() {
//	    if err != nil {
//	        return err
//	    }
//	    // msg.Data holds the complete message, magic through terminator.
//	}
//
// The scanner validates only the frame: magic number, a supported edition,
// a sane declared length and the terminator. Decoding the sections inside
// the frame is the decoder's job.
//
// # Limits
//
// The 24 bit length field caps any message at 16 MiB. WithMaxMessageSize
// lowers that cap for feeds where large declared lengths can only mean
// corruption, keeping a bad frame from buffering megabytes of garbage.
package wire
