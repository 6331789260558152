package operations

import (
	"strconv"
)

// OpType is the protocol-defined integer discriminant of an operation.
// The numbering is fixed by the chain's operation variant and must never
// be reordered.
type OpType uint32

const (
	TypeVote OpType = iota
	TypeComment
	TypeTransfer
	TypeTransferToVesting
	TypeWithdrawVesting
	TypeLimitOrderCreate
	TypeLimitOrderCancel
	TypeFeedPublish
	TypeConvert
	TypeAccountCreate
	TypeAccountUpdate
	TypeAccountMetadata
	TypeWitnessUpdate
	TypeAccountWitnessVote
	TypeAccountWitnessProxy
	TypePOW
	TypeCustom
	TypeReportOverProduction
	TypeDeleteComment
	TypeCustomJSON
	TypeCommentOptions
	TypeSetWithdrawVestingRoute
	TypeLimitOrderCreate2
	TypeChallengeAuthority
	TypeProveAuthority
	TypeRequestAccountRecovery
	TypeRecoverAccount
	TypeChangeRecoveryAccount
	TypeEscrowTransfer
	TypeEscrowDispute
	TypeEscrowRelease
	TypePOW2
	TypeEscrowApprove
	TypeTransferToSavings
	TypeTransferFromSavings
	TypeCancelTransferFromSavings
	TypeCustomBinary
	TypeDeclineVotingRights
	TypeResetAccount
	TypeSetResetAccount
	TypeDelegateVestingShares
	TypeAccountCreateWithDelegation
	TypeAccountCreateWithInvite
	TypeBreakFreeReferral
	TypeDelegateVestingSharesWithInterest
	TypeRejectVestingSharesDelegation
)

var opNames = map[OpType]string{
	TypeVote:                              "vote",
	TypeComment:                           "comment",
	TypeTransfer:                          "transfer",
	TypeTransferToVesting:                 "transfer_to_vesting",
	TypeWithdrawVesting:                   "withdraw_vesting",
	TypeLimitOrderCreate:                  "limit_order_create",
	TypeLimitOrderCancel:                  "limit_order_cancel",
	TypeFeedPublish:                       "feed_publish",
	TypeConvert:                           "convert",
	TypeAccountCreate:                     "account_create",
	TypeAccountUpdate:                     "account_update",
	TypeAccountMetadata:                   "account_metadata",
	TypeWitnessUpdate:                     "witness_update",
	TypeAccountWitnessVote:                "account_witness_vote",
	TypeAccountWitnessProxy:               "account_witness_proxy",
	TypePOW:                               "pow",
	TypeCustom:                            "custom",
	TypeReportOverProduction:              "report_over_production",
	TypeDeleteComment:                     "delete_comment",
	TypeCustomJSON:                        "custom_json",
	TypeCommentOptions:                    "comment_options",
	TypeSetWithdrawVestingRoute:           "set_withdraw_vesting_route",
	TypeLimitOrderCreate2:                 "limit_order_create2",
	TypeChallengeAuthority:                "challenge_authority",
	TypeProveAuthority:                    "prove_authority",
	TypeRequestAccountRecovery:            "request_account_recovery",
	TypeRecoverAccount:                    "recover_account",
	TypeChangeRecoveryAccount:             "change_recovery_account",
	TypeEscrowTransfer:                    "escrow_transfer",
	TypeEscrowDispute:                     "escrow_dispute",
	TypeEscrowRelease:                     "escrow_release",
	TypePOW2:                              "pow2",
	TypeEscrowApprove:                     "escrow_approve",
	TypeTransferToSavings:                 "transfer_to_savings",
	TypeTransferFromSavings:               "transfer_from_savings",
	TypeCancelTransferFromSavings:         "cancel_transfer_from_savings",
	TypeCustomBinary:                      "custom_binary",
	TypeDeclineVotingRights:               "decline_voting_rights",
	TypeResetAccount:                      "reset_account",
	TypeSetResetAccount:                   "set_reset_account",
	TypeDelegateVestingShares:             "delegate_vesting_shares",
	TypeAccountCreateWithDelegation:       "account_create_with_delegation",
	TypeAccountCreateWithInvite:           "account_create_with_invite",
	TypeBreakFreeReferral:                 "break_free_referral",
	TypeDelegateVestingSharesWithInterest: "delegate_vesting_shares_with_interest",
	TypeRejectVestingSharesDelegation:     "reject_vesting_shares_delegation",
}

func (t OpType) String() string {
	if name, exist := opNames[t]; exist {
		return name
	}
	return "unknown_operation_" + strconv.FormatUint(uint64(t), 10)
}
