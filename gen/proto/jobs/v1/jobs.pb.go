// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: jobs/v1/jobs.proto

package jobsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// RatioRow is one company-period record of financial ratios. Ratio values
// travel as text; the scoring pipeline owns numeric validation.
type RatioRow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Symbol        string                 `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Period        string                 `protobuf:"bytes,2,opt,name=period,proto3" json:"period,omitempty"`
	Ratios        map[string]string      `protobuf:"bytes,3,rep,name=ratios,proto3" json:"ratios,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RatioRow) Reset() {
	*x = RatioRow{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RatioRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RatioRow) ProtoMessage() {}

func (x *RatioRow) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RatioRow.ProtoReflect.Descriptor instead.
func (*RatioRow) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{0}
}

func (x *RatioRow) GetSymbol() string {
	if x != nil {
		return x.Symbol
	}
	return ""
}

func (x *RatioRow) GetPeriod() string {
	if x != nil {
		return x.Period
	}
	return ""
}

func (x *RatioRow) GetRatios() map[string]string {
	if x != nil {
		return x.Ratios
	}
	return nil
}

type SubmitJobRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// ANNUAL or QUARTERLY (case-insensitive).
	Kind     string `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	FileName string `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	// Exactly one of rows / file_content carries the batch.
	Rows        []*RatioRow `protobuf:"bytes,3,rep,name=rows,proto3" json:"rows,omitempty"`
	FileContent []byte      `protobuf:"bytes,4,opt,name=file_content,json=fileContent,proto3" json:"file_content,omitempty"`
	// json, csv or xlsx; inferred from file_name when empty.
	FileFormat string `protobuf:"bytes,5,opt,name=file_format,json=fileFormat,proto3" json:"file_format,omitempty"`
	// Submitting identity; determines the visibility scope of the results.
	UserId        string `protobuf:"bytes,6,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	OrgId         string `protobuf:"bytes,7,opt,name=org_id,json=orgId,proto3" json:"org_id,omitempty"`
	Role          string `protobuf:"bytes,8,opt,name=role,proto3" json:"role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobRequest) Reset() {
	*x = SubmitJobRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobRequest) ProtoMessage() {}

func (x *SubmitJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobRequest.ProtoReflect.Descriptor instead.
func (*SubmitJobRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitJobRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *SubmitJobRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *SubmitJobRequest) GetRows() []*RatioRow {
	if x != nil {
		return x.Rows
	}
	return nil
}

func (x *SubmitJobRequest) GetFileContent() []byte {
	if x != nil {
		return x.FileContent
	}
	return nil
}

func (x *SubmitJobRequest) GetFileFormat() string {
	if x != nil {
		return x.FileFormat
	}
	return ""
}

func (x *SubmitJobRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *SubmitJobRequest) GetOrgId() string {
	if x != nil {
		return x.OrgId
	}
	return ""
}

func (x *SubmitJobRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type SubmitJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	State         string                 `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`
	Lane          string                 `protobuf:"bytes,3,opt,name=lane,proto3" json:"lane,omitempty"`
	TotalRows     int32                  `protobuf:"varint,4,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobResponse) Reset() {
	*x = SubmitJobResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobResponse) ProtoMessage() {}

func (x *SubmitJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobResponse.ProtoReflect.Descriptor instead.
func (*SubmitJobResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitJobResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *SubmitJobResponse) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *SubmitJobResponse) GetLane() string {
	if x != nil {
		return x.Lane
	}
	return ""
}

func (x *SubmitJobResponse) GetTotalRows() int32 {
	if x != nil {
		return x.TotalRows
	}
	return 0
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*GetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type JobError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RowIndex      int32                  `protobuf:"varint,1,opt,name=row_index,json=rowIndex,proto3" json:"row_index,omitempty"`
	Symbol        string                 `protobuf:"bytes,2,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobError) Reset() {
	*x = JobError{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobError) ProtoMessage() {}

func (x *JobError) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobError.ProtoReflect.Descriptor instead.
func (*JobError) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{4}
}

func (x *JobError) GetRowIndex() int32 {
	if x != nil {
		return x.RowIndex
	}
	return 0
}

func (x *JobError) GetSymbol() string {
	if x != nil {
		return x.Symbol
	}
	return ""
}

func (x *JobError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type GetJobStatusResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	JobId          string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Kind           string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	State          string                 `protobuf:"bytes,3,opt,name=state,proto3" json:"state,omitempty"`
	Lane           string                 `protobuf:"bytes,4,opt,name=lane,proto3" json:"lane,omitempty"`
	TotalRows      int32                  `protobuf:"varint,5,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	ProcessedRows  int32                  `protobuf:"varint,6,opt,name=processed_rows,json=processedRows,proto3" json:"processed_rows,omitempty"`
	SuccessfulRows int32                  `protobuf:"varint,7,opt,name=successful_rows,json=successfulRows,proto3" json:"successful_rows,omitempty"`
	FailedRows     int32                  `protobuf:"varint,8,opt,name=failed_rows,json=failedRows,proto3" json:"failed_rows,omitempty"`
	ProgressPct    float64                `protobuf:"fixed64,9,opt,name=progress_pct,json=progressPct,proto3" json:"progress_pct,omitempty"`
	// fatal_error or stalled; empty unless state is FAILED.
	FailReason  string      `protobuf:"bytes,10,opt,name=fail_reason,json=failReason,proto3" json:"fail_reason,omitempty"`
	Errors      []*JobError `protobuf:"bytes,11,rep,name=errors,proto3" json:"errors,omitempty"`
	SubmittedAt string      `protobuf:"bytes,12,opt,name=submitted_at,json=submittedAt,proto3" json:"submitted_at,omitempty"` // RFC 3339
	StartedAt   string      `protobuf:"bytes,13,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt  string      `protobuf:"bytes,14,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	// Throughput extrapolation; 0 when no estimate is possible.
	EtaSeconds    int64 `protobuf:"varint,15,opt,name=eta_seconds,json=etaSeconds,proto3" json:"eta_seconds,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusResponse) Reset() {
	*x = GetJobStatusResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusResponse) ProtoMessage() {}

func (x *GetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusResponse.ProtoReflect.Descriptor instead.
func (*GetJobStatusResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{5}
}

func (x *GetJobStatusResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetJobStatusResponse) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *GetJobStatusResponse) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *GetJobStatusResponse) GetLane() string {
	if x != nil {
		return x.Lane
	}
	return ""
}

func (x *GetJobStatusResponse) GetTotalRows() int32 {
	if x != nil {
		return x.TotalRows
	}
	return 0
}

func (x *GetJobStatusResponse) GetProcessedRows() int32 {
	if x != nil {
		return x.ProcessedRows
	}
	return 0
}

func (x *GetJobStatusResponse) GetSuccessfulRows() int32 {
	if x != nil {
		return x.SuccessfulRows
	}
	return 0
}

func (x *GetJobStatusResponse) GetFailedRows() int32 {
	if x != nil {
		return x.FailedRows
	}
	return 0
}

func (x *GetJobStatusResponse) GetProgressPct() float64 {
	if x != nil {
		return x.ProgressPct
	}
	return 0
}

func (x *GetJobStatusResponse) GetFailReason() string {
	if x != nil {
		return x.FailReason
	}
	return ""
}

func (x *GetJobStatusResponse) GetErrors() []*JobError {
	if x != nil {
		return x.Errors
	}
	return nil
}

func (x *GetJobStatusResponse) GetSubmittedAt() string {
	if x != nil {
		return x.SubmittedAt
	}
	return ""
}

func (x *GetJobStatusResponse) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *GetJobStatusResponse) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *GetJobStatusResponse) GetEtaSeconds() int64 {
	if x != nil {
		return x.EtaSeconds
	}
	return 0
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{6}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type CancelJobResponse struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Accepted bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	// Populated when the request was rejected (job already terminal).
	Reason        string `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{7}
}

func (x *CancelJobResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

func (x *CancelJobResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type DeleteJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteJobRequest) Reset() {
	*x = DeleteJobRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteJobRequest) ProtoMessage() {}

func (x *DeleteJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteJobRequest.ProtoReflect.Descriptor instead.
func (*DeleteJobRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{8}
}

func (x *DeleteJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type DeleteJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteJobResponse) Reset() {
	*x = DeleteJobResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteJobResponse) ProtoMessage() {}

func (x *DeleteJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteJobResponse.ProtoReflect.Descriptor instead.
func (*DeleteJobResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{9}
}

type ExportPredictionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPredictionsRequest) Reset() {
	*x = ExportPredictionsRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPredictionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPredictionsRequest) ProtoMessage() {}

func (x *ExportPredictionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPredictionsRequest.ProtoReflect.Descriptor instead.
func (*ExportPredictionsRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{10}
}

func (x *ExportPredictionsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExportPredictionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPredictionsResponse) Reset() {
	*x = ExportPredictionsResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPredictionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPredictionsResponse) ProtoMessage() {}

func (x *ExportPredictionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPredictionsResponse.ProtoReflect.Descriptor instead.
func (*ExportPredictionsResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{11}
}

func (x *ExportPredictionsResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ExportPredictionsResponse) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

var File_jobs_v1_jobs_proto protoreflect.FileDescriptor

const file_jobs_v1_jobs_proto_rawDesc = "" +
	"\n" +
	"\x12jobs/v1/jobs.proto\x12\ajobs.v1\"\xac\x01\n" +
	"\bRatioRow\x12\x16\n" +
	"\x06symbol\x18\x01 \x01(\tR\x06symbol\x12\x16\n" +
	"\x06period\x18\x02 \x01(\tR\x06period\x125\n" +
	"\x06ratios\x18\x03 \x03(\v2\x1d.jobs.v1.RatioRow.RatiosEntryR\x06ratios\x1a9\n" +
	"\vRatiosEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xf2\x01\n" +
	"\x10SubmitJobRequest\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12%\n" +
	"\x04rows\x18\x03 \x03(\v2\x11.jobs.v1.RatioRowR\x04rows\x12!\n" +
	"\ffile_content\x18\x04 \x01(\fR\vfileContent\x12\x1f\n" +
	"\vfile_format\x18\x05 \x01(\tR\n" +
	"fileFormat\x12\x17\n" +
	"\auser_id\x18\x06 \x01(\tR\x06userId\x12\x15\n" +
	"\x06org_id\x18\a \x01(\tR\x05orgId\x12\x12\n" +
	"\x04role\x18\b \x01(\tR\x04role\"s\n" +
	"\x11SubmitJobResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x14\n" +
	"\x05state\x18\x02 \x01(\tR\x05state\x12\x12\n" +
	"\x04lane\x18\x03 \x01(\tR\x04lane\x12\x1d\n" +
	"\n" +
	"total_rows\x18\x04 \x01(\x05R\ttotalRows\",\n" +
	"\x13GetJobStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"Y\n" +
	"\bJobError\x12\x1b\n" +
	"\trow_index\x18\x01 \x01(\x05R\browIndex\x12\x16\n" +
	"\x06symbol\x18\x02 \x01(\tR\x06symbol\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\"\xee\x03\n" +
	"\x14GetJobStatusResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\x12\x14\n" +
	"\x05state\x18\x03 \x01(\tR\x05state\x12\x12\n" +
	"\x04lane\x18\x04 \x01(\tR\x04lane\x12\x1d\n" +
	"\n" +
	"total_rows\x18\x05 \x01(\x05R\ttotalRows\x12%\n" +
	"\x0eprocessed_rows\x18\x06 \x01(\x05R\rprocessedRows\x12'\n" +
	"\x0fsuccessful_rows\x18\a \x01(\x05R\x0esuccessfulRows\x12\x1f\n" +
	"\vfailed_rows\x18\b \x01(\x05R\n" +
	"failedRows\x12!\n" +
	"\fprogress_pct\x18\t \x01(\x01R\vprogressPct\x12\x1f\n" +
	"\vfail_reason\x18\n" +
	" \x01(\tR\n" +
	"failReason\x12)\n" +
	"\x06errors\x18\v \x03(\v2\x11.jobs.v1.JobErrorR\x06errors\x12!\n" +
	"\fsubmitted_at\x18\f \x01(\tR\vsubmittedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\r \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x0e \x01(\tR\n" +
	"finishedAt\x12\x1f\n" +
	"\veta_seconds\x18\x0f \x01(\x03R\n" +
	"etaSeconds\")\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"G\n" +
	"\x11CancelJobResponse\x12\x1a\n" +
	"\baccepted\x18\x01 \x01(\bR\baccepted\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\")\n" +
	"\x10DeleteJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x13\n" +
	"\x11DeleteJobResponse\"1\n" +
	"\x18ExportPredictionsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"R\n" +
	"\x19ExportPredictionsResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName2\x82\x03\n" +
	"\vJobsService\x12B\n" +
	"\tSubmitJob\x12\x19.jobs.v1.SubmitJobRequest\x1a\x1a.jobs.v1.SubmitJobResponse\x12K\n" +
	"\fGetJobStatus\x12\x1c.jobs.v1.GetJobStatusRequest\x1a\x1d.jobs.v1.GetJobStatusResponse\x12B\n" +
	"\tCancelJob\x12\x19.jobs.v1.CancelJobRequest\x1a\x1a.jobs.v1.CancelJobResponse\x12B\n" +
	"\tDeleteJob\x12\x19.jobs.v1.DeleteJobRequest\x1a\x1a.jobs.v1.DeleteJobResponse\x12Z\n" +
	"\x11ExportPredictions\x12!.jobs.v1.ExportPredictionsRequest\x1a\".jobs.v1.ExportPredictionsResponseB9Z7github.com/openfinml/riskscore/gen/proto/jobs/v1;jobsv1b\x06proto3"

var (
	file_jobs_v1_jobs_proto_rawDescOnce sync.Once
	file_jobs_v1_jobs_proto_rawDescData []byte
)

func file_jobs_v1_jobs_proto_rawDescGZIP() []byte {
	file_jobs_v1_jobs_proto_rawDescOnce.Do(func() {
		file_jobs_v1_jobs_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_jobs_v1_jobs_proto_rawDesc), len(file_jobs_v1_jobs_proto_rawDesc)))
	})
	return file_jobs_v1_jobs_proto_rawDescData
}

var file_jobs_v1_jobs_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_jobs_v1_jobs_proto_goTypes = []any{
	(*RatioRow)(nil),                  // 0: jobs.v1.RatioRow
	(*SubmitJobRequest)(nil),          // 1: jobs.v1.SubmitJobRequest
	(*SubmitJobResponse)(nil),         // 2: jobs.v1.SubmitJobResponse
	(*GetJobStatusRequest)(nil),       // 3: jobs.v1.GetJobStatusRequest
	(*JobError)(nil),                  // 4: jobs.v1.JobError
	(*GetJobStatusResponse)(nil),      // 5: jobs.v1.GetJobStatusResponse
	(*CancelJobRequest)(nil),          // 6: jobs.v1.CancelJobRequest
	(*CancelJobResponse)(nil),         // 7: jobs.v1.CancelJobResponse
	(*DeleteJobRequest)(nil),          // 8: jobs.v1.DeleteJobRequest
	(*DeleteJobResponse)(nil),         // 9: jobs.v1.DeleteJobResponse
	(*ExportPredictionsRequest)(nil),  // 10: jobs.v1.ExportPredictionsRequest
	(*ExportPredictionsResponse)(nil), // 11: jobs.v1.ExportPredictionsResponse
	nil,                               // 12: jobs.v1.RatioRow.RatiosEntry
}
var file_jobs_v1_jobs_proto_depIdxs = []int32{
	12, // 0: jobs.v1.RatioRow.ratios:type_name -> jobs.v1.RatioRow.RatiosEntry
	0,  // 1: jobs.v1.SubmitJobRequest.rows:type_name -> jobs.v1.RatioRow
	4,  // 2: jobs.v1.GetJobStatusResponse.errors:type_name -> jobs.v1.JobError
	1,  // 3: jobs.v1.JobsService.SubmitJob:input_type -> jobs.v1.SubmitJobRequest
	3,  // 4: jobs.v1.JobsService.GetJobStatus:input_type -> jobs.v1.GetJobStatusRequest
	6,  // 5: jobs.v1.JobsService.CancelJob:input_type -> jobs.v1.CancelJobRequest
	8,  // 6: jobs.v1.JobsService.DeleteJob:input_type -> jobs.v1.DeleteJobRequest
	10, // 7: jobs.v1.JobsService.ExportPredictions:input_type -> jobs.v1.ExportPredictionsRequest
	2,  // 8: jobs.v1.JobsService.SubmitJob:output_type -> jobs.v1.SubmitJobResponse
	5,  // 9: jobs.v1.JobsService.GetJobStatus:output_type -> jobs.v1.GetJobStatusResponse
	7,  // 10: jobs.v1.JobsService.CancelJob:output_type -> jobs.v1.CancelJobResponse
	9,  // 11: jobs.v1.JobsService.DeleteJob:output_type -> jobs.v1.DeleteJobResponse
	11, // 12: jobs.v1.JobsService.ExportPredictions:output_type -> jobs.v1.ExportPredictionsResponse
	8,  // [8:13] is the sub-list for method output_type
	3,  // [3:8] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_jobs_v1_jobs_proto_init() }
func file_jobs_v1_jobs_proto_init() {
	if File_jobs_v1_jobs_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_jobs_v1_jobs_proto_rawDesc), len(file_jobs_v1_jobs_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_jobs_v1_jobs_proto_goTypes,
		DependencyIndexes: file_jobs_v1_jobs_proto_depIdxs,
		MessageInfos:      file_jobs_v1_jobs_proto_msgTypes,
	}.Build()
	File_jobs_v1_jobs_proto = out.File
	file_jobs_v1_jobs_proto_goTypes = nil
	file_jobs_v1_jobs_proto_depIdxs = nil
}
