// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

// Message keys reported through EventListener.Message. Error keys carry a
// "reason" parameter with one of the Reason* values.
const (
	KeyListGetFirst              = "list.getFirst"
	KeyListGetFirstError         = "list.getFirstError"
	KeyListGetLast               = "list.getLast"
	KeyListGetLastError          = "list.getLastError"
	KeyListGetActive             = "list.getActive"
	KeyListGetActiveError        = "list.getActiveError"
	KeyListSetActive             = "list.setActive"
	KeyListSetActiveError        = "list.setActiveError"
	KeyListIsActive              = "list.isActive"
	KeyListInsertAfterError      = "list.insertAfterActiveError"
	KeyListInsertBeforeError     = "list.insertBeforeActiveError"
	KeyListDeleteFirstError      = "list.deleteFirstError"
	KeyListDeleteLastError       = "list.deleteLastError"
	KeyListDeleteAfterError      = "list.deleteAfterActiveError"
	KeyListDeleteBeforeError     = "list.deleteBeforeActiveError"
	KeyListActivateFirstError    = "list.activateFirstError"
	KeyListActivateLastError     = "list.activateLastError"
	KeyListActivateNextError     = "list.activateNextError"
	KeyListActivatePreviousError = "list.activatePreviousError"

	KeyStackPop        = "stack.pop"
	KeyStackPushError  = "stack.pushError"
	KeyStackPopError   = "stack.popError"
	KeyStackTop        = "stack.top"
	KeyStackTopError   = "stack.topError"
	KeyStackIsEmpty    = "stack.isEmpty"
	KeyStackIsFull     = "stack.isFull"
	KeyQueueDequeue    = "queue.dequeue"
	KeyQueueEnqueueErr = "queue.enqueueError"
	KeyQueueDequeueErr = "queue.dequeueError"
	KeyQueueRemoveErr  = "queue.removeError"
	KeyQueueFront      = "queue.front"
	KeyQueueFrontError = "queue.frontError"
	KeyQueueIsEmpty    = "queue.isEmpty"
	KeyQueueIsFull     = "queue.isFull"

	KeyTreeInsertExists   = "tree.insertExists"
	KeyTreeRemoveError    = "tree.removeError"
	KeyTreeSearchFound    = "tree.searchFound"
	KeyTreeSearchNotFound = "tree.searchNotFound"
	KeyTreeTraversalError = "tree.traversalError"
	KeyTreeHeight         = "tree.height"
	KeyTreeMin            = "tree.min"
	KeyTreeMax            = "tree.max"
	KeyTreeMinMaxError    = "tree.minMaxError"
)

// Values of the "reason" parameter of error keys.
const (
	ReasonEmpty         = "empty"
	ReasonFull          = "full"
	ReasonNotActive     = "notActive"
	ReasonNoSuccessor   = "noSuccessor"
	ReasonNoPredecessor = "noPredecessor"
	ReasonNotFound      = "notFound"
)

// Parameter names.
const (
	ParamValue  = "value"
	ParamReason = "reason"
	ParamKey    = "key"
	ParamResult = "result"
	ParamHeight = "height"
)
