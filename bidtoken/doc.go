/*
Bid token contract is the payment asset of the sealed-bid auction suite. It
is a NEP-17 compatible fungible token, so it can be tracked and controlled
by N3 compatible network monitors and wallet software.

Revealed bids are paid in this token: the auction contract pulls the
revealed amount from a bidder's account into its own escrow account and
pays refunds and the final owner payout back out of it. The transfer
authorization rule allows a transfer witnessed by the sender as well as a
transfer initiated by a contract from its own account, which is exactly
what both directions of the escrow flow need.

Tokens enter and leave circulation only through committee-controlled Mint
and Burn operations.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This is an enhanced transfer notification with details.
The auction contract tags escrow, refund and payout transfers through it.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray

Mint notification. Produced when new tokens are put into circulation.

	Mint:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Burn notification. Produced when tokens are removed from circulation.

	Burn:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package bidtoken
