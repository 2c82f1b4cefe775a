/*
Auction contract runs single-item first-price sealed-bid auctions with a
commit-reveal protocol. One deployed contract hosts any number of auction
instances; each instance is identified by a 32-byte ID derived from the
deployer, the auction parameters and a monotonically increasing instance
counter, so the ID of the next auction can be computed before deployment.

An auction walks through the following phases: INACTIVE after deployment,
COMMIT while bidders submit commitment hashes hiding their bids, REVEAL while
bidders disclose (amount, secret) pairs, and finally either FINALIZED (lot to
the winner, funds to the owner) or RESERVE_NOT_MET (no qualifying bid), from
which the owner can move it to CANCELED. Window deadlines are absolute block
timestamps in milliseconds; submissions are accepted through and including a
deadline while phase advancement requires the deadline to be strictly passed.

The contract holds custody of the auctioned lot (a non-divisible NEP-11
token) from deployment until settlement and of payment token funds equal to
the current highest bid while bidding is in progress. Funds of displaced
bidders are refunded immediately within the reveal that displaces them.

# Contract notifications

AuctionDeployed notification. This notification is produced when a new
auction instance is created and its lot is taken into custody.

	AuctionDeployed:
	  - name: auctionID
	    type: ByteArray
	  - name: owner
	    type: Hash160
	  - name: tokenID
	    type: ByteArray

CommitPhaseStarted notification. Produced when the auction owner opens the
commit window.

	CommitPhaseStarted:
	  - name: auctionID
	    type: ByteArray
	  - name: commitEnd
	    type: Integer

CommitmentAdded notification. Produced for every commitment recorded in the
auction's ledger.

	CommitmentAdded:
	  - name: auctionID
	    type: ByteArray
	  - name: commitment
	    type: ByteArray

RevealPhaseStarted notification. Produced when the auction advances from
COMMIT to REVEAL.

	RevealPhaseStarted:
	  - name: auctionID
	    type: ByteArray
	  - name: revealEnd
	    type: Integer

HighestBidChanged notification. Produced when a revealed bid displaces the
current winner (or becomes the first winner, in which case prevBidder is
null and prevAmount is 0).

	HighestBidChanged:
	  - name: auctionID
	    type: ByteArray
	  - name: bidder
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: prevBidder
	    type: Hash160
	  - name: prevAmount
	    type: Integer

Finalized notification. Produced when the auction settles with a winner.

	Finalized:
	  - name: auctionID
	    type: ByteArray
	  - name: caller
	    type: Hash160
	  - name: winner
	    type: Hash160
	  - name: amount
	    type: Integer

Cancelled notification. Produced when the owner cancels the auction and the
lot is returned.

	Cancelled:
	  - name: auctionID
	    type: ByteArray
	  - name: caller
	    type: Hash160
*/
package auction
