package dummydb

import (
	"sync"

	"github.com/trezcool/ripoti/core/autograde"
	"github.com/trezcool/ripoti/core/submission"
)

type (
	DB struct {
		submissionMeta *submissionMetaTable
		autogradeLog   *autogradeLogTable
	}

	submissionMetaTable struct {
		sync.RWMutex
		table map[int]*submission.Meta // keyed by submission id
	}

	autogradeLogTable struct {
		sync.RWMutex
		table map[int]*autograde.Log
	}
)

func Open() (*DB, error) {
	db := &DB{
		submissionMeta: &submissionMetaTable{table: make(map[int]*submission.Meta)},
		autogradeLog:   &autogradeLogTable{table: make(map[int]*autograde.Log)},
	}
	return db, nil
}
