// Package seqmocks gomock реализация seq.Sequence для тестов кода
// работающего с произвольными последовательностями.
package seqmocks

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/sirkon/seqlist/seq"
)

var _ seq.Sequence[int] = (*MockSequence[int])(nil)

// MockSequence мок seq.Sequence.
type MockSequence[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockSequenceMockRecorder[T]
}

// MockSequenceMockRecorder запись ожиданий для MockSequence.
type MockSequenceMockRecorder[T any] struct {
	mock *MockSequence[T]
}

// NewMockSequence конструктор мока.
func NewMockSequence[T any](ctrl *gomock.Controller) *MockSequence[T] {
	mock := &MockSequence[T]{ctrl: ctrl}
	mock.recorder = &MockSequenceMockRecorder[T]{mock: mock}
	return mock
}

// EXPECT возвращает объект для задания ожидаемых вызовов.
func (m *MockSequence[T]) EXPECT() *MockSequenceMockRecorder[T] {
	return m.recorder
}

// Add mocks base method.
func (m *MockSequence[T]) Add(value T) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Add", value)
}

// Add indicates an expected call of Add.
func (mr *MockSequenceMockRecorder[T]) Add(value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockSequence[T])(nil).Add), value)
}

// Delete mocks base method.
func (m *MockSequence[T]) Delete(index int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", index)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockSequenceMockRecorder[T]) Delete(index any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockSequence[T])(nil).Delete), index)
}

// Get mocks base method.
func (m *MockSequence[T]) Get(index int) (T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", index)
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockSequenceMockRecorder[T]) Get(index any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockSequence[T])(nil).Get), index)
}

// Iter mocks base method.
func (m *MockSequence[T]) Iter() seq.Iterator[T] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Iter")
	ret0, _ := ret[0].(seq.Iterator[T])
	return ret0
}

// Iter indicates an expected call of Iter.
func (mr *MockSequenceMockRecorder[T]) Iter() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Iter", reflect.TypeOf((*MockSequence[T])(nil).Iter))
}

// Len mocks base method.
func (m *MockSequence[T]) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

// Len indicates an expected call of Len.
func (mr *MockSequenceMockRecorder[T]) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockSequence[T])(nil).Len))
}

// Set mocks base method.
func (m *MockSequence[T]) Set(index int, value T) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", index, value)
	ret0, _ := ret[0].(error)
	return ret0
}

// Set indicates an expected call of Set.
func (mr *MockSequenceMockRecorder[T]) Set(index, value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockSequence[T])(nil).Set), index, value)
}

// String mocks base method.
func (m *MockSequence[T]) String() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "String")
	ret0, _ := ret[0].(string)
	return ret0
}

// String indicates an expected call of String.
func (mr *MockSequenceMockRecorder[T]) String() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "String", reflect.TypeOf((*MockSequence[T])(nil).String))
}
