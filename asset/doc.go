/*
Asset contract is the registry of auctioned lots. It is a non-divisible
non-fungible NEP-11 compatible token: every lot is a token with a unique ID,
minted by committee and traded as a whole. The sealed-bid auction contract
takes lots into custody at auction deployment and releases them at
settlement or cancellation through the regular NEP-11 transfer, which also
invokes the onNEP11Payment acknowledgement hook on contract recipients.

# Contract notifications

Transfer notification. This is a NEP-11 standard notification; amount is
always 1 and from is empty on mint.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: tokenId
	    type: ByteArray
*/
package asset
