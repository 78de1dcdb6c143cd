package tui

type snapshotUpdatedMsg struct{}

type updatesClosedMsg struct{}

type submitDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}
