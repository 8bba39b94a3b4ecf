package common

//
// logging.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

const (
	LogKeySubID     = "sub_id"
	LogKeySourceKey = "source_key"
	LogKeyOpID      = "op_id"
	LogKeyOpKind    = "op_kind"
	LogKeyTaskID    = "task_id"
	LogKeyReqID     = "req_id"
)
