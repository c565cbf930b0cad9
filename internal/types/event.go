package types

type EventTypes string

func (e EventTypes) String() string {
	return string(e)
}

const (
	EventProposalVote   EventTypes = "fiatbridge.v1.EventProposalVote"
	EventProposalPassed EventTypes = "fiatbridge.v1.EventProposalPassed"
	EventBridgeMint     EventTypes = "fiatbridge.v1.EventBridgeMint"
	EventBridgeBurn     EventTypes = "fiatbridge.v1.EventBridgeBurn"
)

const (
	EventMinimumBurnChanged       EventTypes = "fiatbridge.v1.EventMinimumBurnChanged"
	EventProposalThresholdChanged EventTypes = "fiatbridge.v1.EventProposalThresholdChanged"
	EventMintFeeChange            EventTypes = "fiatbridge.v1.EventMintFeeChange"
	EventBurnFeeChange            EventTypes = "fiatbridge.v1.EventBurnFeeChange"
	EventFeeRecipientSharesChange EventTypes = "fiatbridge.v1.EventFeeRecipientSharesChange"
	EventFeeRecipientsCleared     EventTypes = "fiatbridge.v1.EventFeeRecipientsCleared"
	EventAccountApprovalChanged   EventTypes = "fiatbridge.v1.EventAccountApprovalChanged"
	EventAutoMintChanged          EventTypes = "fiatbridge.v1.EventAutoMintChanged"
)
