// Package cable sorts the links of a serpentine chain into physical cable
// size classes for one harness.
//
// # Tiers
//
//   - [Small]: panel-to-panel jumper within a row
//   - [Medium]: row-to-row jumper on the vertical hop
//   - [Large]: trunk cable back to a distribution point (switch or power box)
//
// # Harnesses
//
// The data ([LAN]) and power ([Power]) harnesses follow the same chain but
// break it into runs of different length. A [RunPolicy] captures that
// difference: when MaxRunLength is set to L, the chain's links are numbered
// 1..n-1 (link k joins order k to order k+1) and every link whose number is a
// multiple of L is replaced by a large cable, because the run of L panels ends
// there and the next panel is fed from the distribution point. The last panel
// of the chain never starts a link, so a wall of exactly L panels needs no
// extra trunk. Vertical hops always stay medium, even on a run boundary.
//
// Every harness additionally needs FeedPoints large trunk cables (one by
// default) from the end of the chain back to its source.
//
// # Conservation
//
// Every connection maps to exactly one tier and every feed adds one large
// cable, so for any policy:
//
//	small + medium + large == len(connections) + feeds
//
// # Usage
//
//	counts, err := cable.Classify(conns, cable.DefaultPolicy(cable.LAN))
//	if err != nil {
//	    return err // INVALID_POLICY
//	}
//	fmt.Println(counts.Small, counts.Medium, counts.Large)
package cable
