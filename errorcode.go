package broker

import "fmt"

// ErrorCode is the int16 error code Kafka brokers embed in RPC responses.
// Zero always means success. The table below covers the codes this client
// needs to recognize by name; any other value still satisfies error via its
// generic Title/Description.
type ErrorCode int16

const (
	Unknown                             ErrorCode = -1
	None                                ErrorCode = 0
	OffsetOutOfRange                    ErrorCode = 1
	CorruptMessage                      ErrorCode = 2
	UnknownTopicOrPartition             ErrorCode = 3
	InvalidFetchSize                    ErrorCode = 4
	LeaderNotAvailable                  ErrorCode = 5
	NotLeaderForPartition               ErrorCode = 6
	RequestTimedOut                     ErrorCode = 7
	BrokerNotAvailable                  ErrorCode = 8
	ReplicaNotAvailable                 ErrorCode = 9
	MessageTooLarge                     ErrorCode = 10
	StaleControllerEpoch                ErrorCode = 11
	OffsetMetadataTooLarge              ErrorCode = 12
	NetworkException                    ErrorCode = 13
	GroupLoadInProgress                 ErrorCode = 14
	GroupCoordinatorNotAvailable        ErrorCode = 15
	NotCoordinatorForGroup              ErrorCode = 16
	InvalidTopic                        ErrorCode = 17
	RecordListTooLarge                  ErrorCode = 18
	NotEnoughReplicas                   ErrorCode = 19
	NotEnoughReplicasAfterAppend        ErrorCode = 20
	InvalidRequiredAcks                 ErrorCode = 21
	IllegalGeneration                   ErrorCode = 22
	InconsistentGroupProtocol           ErrorCode = 23
	InvalidGroupId                      ErrorCode = 24
	UnknownMemberId                     ErrorCode = 25
	InvalidSessionTimeout               ErrorCode = 26
	RebalanceInProgress                 ErrorCode = 27
	InvalidCommitOffsetSize             ErrorCode = 28
	TopicAuthorizationFailed            ErrorCode = 29
	GroupAuthorizationFailed            ErrorCode = 30
	ClusterAuthorizationFailed          ErrorCode = 31
	InvalidTimestamp                    ErrorCode = 32
	UnsupportedSASLMechanism            ErrorCode = 33
	IllegalSASLState                    ErrorCode = 34
	UnsupportedVersionCode              ErrorCode = 35
	TopicAlreadyExists                  ErrorCode = 36
	InvalidPartitions                   ErrorCode = 37
	InvalidReplicationFactor            ErrorCode = 38
	InvalidReplicaAssignment            ErrorCode = 39
	InvalidConfig                       ErrorCode = 40
	NotController                       ErrorCode = 41
	InvalidRequest                      ErrorCode = 42
	UnsupportedForMessageFormat         ErrorCode = 43
	PolicyViolation                     ErrorCode = 44
	OutOfOrderSequenceNumber            ErrorCode = 45
	DuplicateSequenceNumber             ErrorCode = 46
	InvalidProducerEpoch                ErrorCode = 47
	InvalidTxnState                     ErrorCode = 48
	InvalidProducerIdMapping            ErrorCode = 49
	InvalidTransactionTimeout           ErrorCode = 50
	ConcurrentTransactions              ErrorCode = 51
	TransactionCoordinatorFenced        ErrorCode = 52
	TransactionalIdAuthorizationFailed  ErrorCode = 53
	SecurityDisabled                    ErrorCode = 54
	OperationNotAttempted               ErrorCode = 55
	KafkaStorageError                   ErrorCode = 56
	LogDirNotFound                      ErrorCode = 57
	SASLAuthenticationFailed            ErrorCode = 58
	UnknownProducerId                   ErrorCode = 59
	ReassignmentInProgress              ErrorCode = 60
	DelegationTokenAuthDisabled         ErrorCode = 61
	DelegationTokenNotFound             ErrorCode = 62
	DelegationTokenOwnerMismatch        ErrorCode = 63
	DelegationTokenRequestNotAllowed    ErrorCode = 64
	DelegationTokenAuthorizationFailed  ErrorCode = 65
	DelegationTokenExpired              ErrorCode = 66
	InvalidPrincipalType                ErrorCode = 67
	NonEmptyGroup                       ErrorCode = 68
	GroupIdNotFound                     ErrorCode = 69
	FetchSessionIdNotFound              ErrorCode = 70
	InvalidFetchSessionEpoch            ErrorCode = 71
	ListenerNotFound                    ErrorCode = 72
	TopicDeletionDisabled               ErrorCode = 73
	FencedLeaderEpoch                   ErrorCode = 74
	UnknownLeaderEpoch                  ErrorCode = 75
	UnsupportedCompressionType          ErrorCode = 76
	StaleBrokerEpoch                    ErrorCode = 77
	OffsetNotAvailable                  ErrorCode = 78
	MemberIdRequired                    ErrorCode = 79
	PreferredLeaderNotAvailable         ErrorCode = 80
	GroupMaxSizeReached                 ErrorCode = 81
	FencedInstanceId                    ErrorCode = 82
)

var errorCodeTitles = map[ErrorCode]string{
	Unknown:                            "Unknown",
	None:                               "None",
	OffsetOutOfRange:                   "OffsetOutOfRange",
	CorruptMessage:                     "CorruptMessage",
	UnknownTopicOrPartition:            "UnknownTopicOrPartition",
	InvalidFetchSize:                   "InvalidFetchSize",
	LeaderNotAvailable:                 "LeaderNotAvailable",
	NotLeaderForPartition:              "NotLeaderForPartition",
	RequestTimedOut:                    "RequestTimedOut",
	BrokerNotAvailable:                 "BrokerNotAvailable",
	ReplicaNotAvailable:                "ReplicaNotAvailable",
	MessageTooLarge:                    "MessageTooLarge",
	StaleControllerEpoch:               "StaleControllerEpoch",
	OffsetMetadataTooLarge:             "OffsetMetadataTooLarge",
	NetworkException:                   "NetworkException",
	GroupLoadInProgress:                "GroupLoadInProgress",
	GroupCoordinatorNotAvailable:       "GroupCoordinatorNotAvailable",
	NotCoordinatorForGroup:             "NotCoordinatorForGroup",
	InvalidTopic:                       "InvalidTopic",
	RecordListTooLarge:                 "RecordListTooLarge",
	NotEnoughReplicas:                  "NotEnoughReplicas",
	NotEnoughReplicasAfterAppend:       "NotEnoughReplicasAfterAppend",
	InvalidRequiredAcks:                "InvalidRequiredAcks",
	IllegalGeneration:                  "IllegalGeneration",
	InconsistentGroupProtocol:          "InconsistentGroupProtocol",
	InvalidGroupId:                     "InvalidGroupId",
	UnknownMemberId:                    "UnknownMemberId",
	InvalidSessionTimeout:              "InvalidSessionTimeout",
	RebalanceInProgress:                "RebalanceInProgress",
	InvalidCommitOffsetSize:            "InvalidCommitOffsetSize",
	TopicAuthorizationFailed:           "TopicAuthorizationFailed",
	GroupAuthorizationFailed:           "GroupAuthorizationFailed",
	ClusterAuthorizationFailed:         "ClusterAuthorizationFailed",
	InvalidTimestamp:                   "InvalidTimestamp",
	UnsupportedSASLMechanism:           "UnsupportedSASLMechanism",
	IllegalSASLState:                   "IllegalSASLState",
	UnsupportedVersionCode:             "UnsupportedVersion",
	TopicAlreadyExists:                 "TopicAlreadyExists",
	InvalidPartitions:                  "InvalidPartitions",
	InvalidReplicationFactor:           "InvalidReplicationFactor",
	InvalidReplicaAssignment:           "InvalidReplicaAssignment",
	InvalidConfig:                      "InvalidConfig",
	NotController:                      "NotController",
	InvalidRequest:                     "InvalidRequest",
	UnsupportedForMessageFormat:        "UnsupportedForMessageFormat",
	PolicyViolation:                    "PolicyViolation",
	OutOfOrderSequenceNumber:           "OutOfOrderSequenceNumber",
	DuplicateSequenceNumber:            "DuplicateSequenceNumber",
	InvalidProducerEpoch:               "InvalidProducerEpoch",
	InvalidTxnState:                    "InvalidTxnState",
	InvalidProducerIdMapping:           "InvalidProducerIdMapping",
	InvalidTransactionTimeout:          "InvalidTransactionTimeout",
	ConcurrentTransactions:             "ConcurrentTransactions",
	TransactionCoordinatorFenced:       "TransactionCoordinatorFenced",
	TransactionalIdAuthorizationFailed: "TransactionalIdAuthorizationFailed",
	SecurityDisabled:                   "SecurityDisabled",
	OperationNotAttempted:              "OperationNotAttempted",
	KafkaStorageError:                  "KafkaStorageError",
	LogDirNotFound:                     "LogDirNotFound",
	SASLAuthenticationFailed:           "SaslAuthenticationFailed",
	UnknownProducerId:                  "UnknownProducerId",
	ReassignmentInProgress:             "ReassignmentInProgress",
	DelegationTokenAuthDisabled:        "DelegationTokenAuthDisabled",
	DelegationTokenNotFound:            "DelegationTokenNotFound",
	DelegationTokenOwnerMismatch:       "DelegationTokenOwnerMismatch",
	DelegationTokenRequestNotAllowed:   "DelegationTokenRequestNotAllowed",
	DelegationTokenAuthorizationFailed: "DelegationTokenAuthorizationFailed",
	DelegationTokenExpired:             "DelegationTokenExpired",
	InvalidPrincipalType:               "InvalidPrincipalType",
	NonEmptyGroup:                      "NonEmptyGroup",
	GroupIdNotFound:                    "GroupIdNotFound",
	FetchSessionIdNotFound:             "FetchSessionIdNotFound",
	InvalidFetchSessionEpoch:           "InvalidFetchSessionEpoch",
	ListenerNotFound:                   "ListenerNotFound",
	TopicDeletionDisabled:              "TopicDeletionDisabled",
	FencedLeaderEpoch:                  "FencedLeaderEpoch",
	UnknownLeaderEpoch:                 "UnknownLeaderEpoch",
	UnsupportedCompressionType:         "UnsupportedCompressionType",
	StaleBrokerEpoch:                   "StaleBrokerEpoch",
	OffsetNotAvailable:                 "OffsetNotAvailable",
	MemberIdRequired:                   "MemberIdRequired",
	PreferredLeaderNotAvailable:        "PreferredLeaderNotAvailable",
	GroupMaxSizeReached:                "GroupMaxSizeReached",
	FencedInstanceId:                   "FencedInstanceId",
}

var errorCodeDescriptions = map[ErrorCode]string{
	MemberIdRequired:        "the group member needs to have a valid member id before actually entering a consumer group",
	RequestTimedOut:         "the request exceeded the broker's configured timeout",
	NotCoordinatorForGroup:  "this broker is not the coordinator for the requested group",
	RebalanceInProgress:     "the coordinator is in the middle of a group rebalance",
	UnknownTopicOrPartition: "this broker does not host the requested topic partition",
	UnsupportedVersionCode:  "the broker does not support the requested version of this API",
}

// Title returns the short, stable name Kafka uses for this error code.
func (c ErrorCode) Title() string {
	if t, ok := errorCodeTitles[c]; ok {
		return t
	}
	return fmt.Sprintf("ErrorCode(%d)", int16(c))
}

// Description returns a longer, human readable explanation of the error
// code when one is known, or the title otherwise.
func (c ErrorCode) Description() string {
	if d, ok := errorCodeDescriptions[c]; ok {
		return d
	}
	return c.Title()
}

func (c ErrorCode) Error() string { return c.Title() }

func (c ErrorCode) String() string { return c.Title() }
